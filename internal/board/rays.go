package board

// Direction is a single step on the grid.
type Direction struct {
	DRow, DCol int
}

// Ray direction sets. North is toward row 0.
var (
	Orthogonal    = []Direction{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}   // N, S, E, W
	Diagonal      = []Direction{{-1, 1}, {-1, -1}, {1, 1}, {1, -1}} // NE, NW, SE, SW
	AllDirections = append(append([]Direction{}, Orthogonal...), Diagonal...)
)

// Cast walks outward from sq along each direction for a piece of color
// mover. Empty squares are reachable and the walk continues; the first
// occupied square ends the ray and is reachable only if it holds an enemy.
func Cast(p *Position, sq Square, mover Color, dirs []Direction) []Square {
	var out []Square
	for _, d := range dirs {
		for to := sq.Offset(d.DRow, d.DCol); to.Valid(); to = to.Offset(d.DRow, d.DCol) {
			occupant := p.PieceAt(to)
			if occupant.IsEmpty() {
				out = append(out, to)
				continue
			}
			if occupant.Color != mover {
				out = append(out, to)
			}
			break
		}
	}
	return out
}

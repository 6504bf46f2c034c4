package rom

// Pointers locates data tables inside PRG.
type Pointers struct {
	BulletDirX     int // signed dx per direction index
	BulletDirY     int // signed dy per direction index
	BulletDirCount int
}

var StarSoldier = Pointers{
	BulletDirX:     0x0923,
	BulletDirY:     0x0963,
	BulletDirCount: 0x40,
}

// Displacement is one raw entry of the game's precomputed bullet direction
// table.
type Displacement struct {
	DX, DY int8
}

// BulletDirections zips the dx and dy runs of the bullet direction table in
// table order. The values are the game's own and never go through aim
// classification.
func BulletDirections(r *ROM, p Pointers) []Displacement {
	dxs := r.Bytes(p.BulletDirX, p.BulletDirCount)
	dys := r.Bytes(p.BulletDirY, p.BulletDirCount)

	dirs := make([]Displacement, p.BulletDirCount)
	for i := range dirs {
		dirs[i] = Displacement{DX: int8(dxs[i]), DY: int8(dys[i])}
	}
	return dirs
}

package service

import "math/rand"

// tripThumbnails is the fixed pool of preset trip cover images. Order
// matters for deterministic selection in tests.
var tripThumbnails = []string{
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745563965/rh62v2pkxe1iidaq51pp.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564280/thq60ytekuxokvhx1tfh.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564379/y3yzv80lqmzq0fgstn9f.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564411/nr9wvshaewcssiyldq1r.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564438/yotejrr4sp6zb6qa4byx.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564462/jh6vo0cyrbxuhb1hbboz.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564470/lco3idkoelc4rrhgld7t.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564485/gw9svacvp16jdnctkv8p.jpg",
	"http://res.cloudinary.com/didg0xpge/image/upload/v1745564495/ruqiponckujq6o7l8czk.jpg",
}

// pickThumbnail returns one element of the pool chosen uniformly by the
// given random source
func pickThumbnail(pool []string, rng *rand.Rand) string {
	return pool[rng.Intn(len(pool))]
}

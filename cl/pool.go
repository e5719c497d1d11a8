package cl

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/hyperlog/clproof/internal/pool"
)

// ObjectPool provides a memory pool for the scratch values a proof builder
// allocates by the dozen per credential: big integers, G1/G2 points, and the
// byte buffers the Fiat-Shamir hash is assembled into. Reusing them keeps GC
// pressure flat regardless of how many sub-proofs a single Proof aggregates.
type ObjectPool struct {
	bigInt      *pool.Pool[big.Int]
	bigIntSlice *pool.Pool[[]*big.Int]
	g1Affine    *pool.Pool[bls12381.G1Affine]
	g2Affine    *pool.Pool[bls12381.G2Affine]
	byteBuf     *pool.Pool[[]byte]
}

// NewObjectPool creates a new, independently-scoped object pool.
func NewObjectPool() *ObjectPool {
	return &ObjectPool{
		bigInt: pool.New(
			func() *big.Int { return new(big.Int) },
			func(v *big.Int) { v.SetInt64(0) },
		),
		bigIntSlice: pool.New(
			func() *[]*big.Int { s := make([]*big.Int, 0, 8); return &s },
			func(v *[]*big.Int) { *v = (*v)[:0] },
		),
		g1Affine: pool.New(
			func() *bls12381.G1Affine { return new(bls12381.G1Affine) },
			nil,
		),
		g2Affine: pool.New(
			func() *bls12381.G2Affine { return new(bls12381.G2Affine) },
			nil,
		),
		byteBuf: pool.New(
			func() *[]byte { b := make([]byte, 0, 1024); return &b },
			func(v *[]byte) { *v = (*v)[:0] },
		),
	}
}

// defaultPool is shared by package-level helpers used outside a ProofBuilder.
var defaultPool = NewObjectPool()

func (p *ObjectPool) GetBigInt() *big.Int    { return p.bigInt.Get() }
func (p *ObjectPool) PutBigInt(v *big.Int)   { p.bigInt.Put(v) }
func (p *ObjectPool) GetG1Affine() *bls12381.G1Affine  { return p.g1Affine.Get() }
func (p *ObjectPool) PutG1Affine(v *bls12381.G1Affine) { p.g1Affine.Put(v) }
func (p *ObjectPool) GetG2Affine() *bls12381.G2Affine  { return p.g2Affine.Get() }
func (p *ObjectPool) PutG2Affine(v *bls12381.G2Affine) { p.g2Affine.Put(v) }

// GetBigIntSlice borrows a scratch slice with at least the requested capacity.
func (p *ObjectPool) GetBigIntSlice(capacity int) []*big.Int {
	s := p.bigIntSlice.Get()
	if cap(*s) < capacity {
		return make([]*big.Int, 0, capacity)
	}
	return *s
}

// PutBigIntSlice returns a scratch slice to the pool.
func (p *ObjectPool) PutBigIntSlice(slice []*big.Int) {
	if slice != nil {
		p.bigIntSlice.Put(&slice)
	}
}

// GetChallengeBuffer borrows a scratch buffer for hashing tau/c-list bytes.
func (p *ObjectPool) GetChallengeBuffer(capacity int) []byte {
	b := p.byteBuf.Get()
	if cap(*b) < capacity {
		return make([]byte, 0, capacity)
	}
	return *b
}

// PutChallengeBuffer returns a scratch buffer to the pool.
func (p *ObjectPool) PutChallengeBuffer(buf []byte) {
	if buf != nil {
		p.byteBuf.Put(&buf)
	}
}

func GetBigInt() *big.Int  { return defaultPool.GetBigInt() }
func PutBigInt(v *big.Int) { defaultPool.PutBigInt(v) }

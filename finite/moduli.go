// SPDX-License-Identifier: MIT

package finite

// Modulus fixes the modulus of an Element type. Implementations are
// zero-size types whose method returns a constant ≥ 2.
type Modulus interface {
	Modulus() uint64
}

// Prime moduli.
type (
	Mod2         struct{}
	Mod3         struct{}
	Mod5         struct{}
	Mod7         struct{}
	Mod11        struct{}
	Mod13        struct{}
	Mod29        struct{}
	Mod97        struct{}
	Mod101       struct{}
	Mod998244353 struct{} // 119·2^23 + 1
	Mod1e9p7     struct{} // 10^9 + 7
	Mod1e9p9     struct{} // 10^9 + 9
	Mod2p61m1    struct{} // Mersenne prime 2^61 - 1
)

func (Mod2) Modulus() uint64         { return 2 }
func (Mod3) Modulus() uint64         { return 3 }
func (Mod5) Modulus() uint64         { return 5 }
func (Mod7) Modulus() uint64         { return 7 }
func (Mod11) Modulus() uint64        { return 11 }
func (Mod13) Modulus() uint64        { return 13 }
func (Mod29) Modulus() uint64        { return 29 }
func (Mod97) Modulus() uint64        { return 97 }
func (Mod101) Modulus() uint64       { return 101 }
func (Mod998244353) Modulus() uint64 { return 998244353 }
func (Mod1e9p7) Modulus() uint64     { return 1_000_000_007 }
func (Mod1e9p9) Modulus() uint64     { return 1_000_000_009 }
func (Mod2p61m1) Modulus() uint64    { return 1<<61 - 1 }

// Composite moduli. Ring arithmetic works; Inverse and Div fail with ErrNotPrime.
type (
	Mod4   struct{}
	Mod6   struct{}
	Mod1e9 struct{}
)

func (Mod4) Modulus() uint64   { return 4 }
func (Mod6) Modulus() uint64   { return 6 }
func (Mod1e9) Modulus() uint64 { return 1_000_000_000 }

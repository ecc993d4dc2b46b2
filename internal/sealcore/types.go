package sealcore

// Algorithm names a symmetric primitive and the bit widths it consumes.
// IVBits is 0 for MAC-only algorithms (they have no IV).
type Algorithm struct {
	Name   string
	KeyBits int
	IVBits  int
}

// KeyBytes returns Algorithm.KeyBits/8.
func (a Algorithm) KeyBytes() int { return a.KeyBits / 8 }

// IVBytes returns Algorithm.IVBits/8.
func (a Algorithm) IVBytes() int { return a.IVBits / 8 }

// Options bundles a salt width, an algorithm selection, and a PBKDF2
// iteration count — the profile used to derive one key (encryption or
// integrity) for one seal/unseal call.
type Options struct {
	SaltBits   int
	Algorithm  Algorithm
	Iterations int
}

// SaltBytes returns Options.SaltBits/8.
func (o Options) SaltBytes() int { return o.SaltBits / 8 }

// Named algorithm instances (§3).
var (
	AlgoAES128CBC = Algorithm{Name: "aes-128-cbc", KeyBits: 128, IVBits: 128}
	AlgoAES256CBC = Algorithm{Name: "aes-256-cbc", KeyBits: 256, IVBits: 128}
	AlgoSHA256    = Algorithm{Name: "sha256", KeyBits: 256, IVBits: 0}
)

// algorithmsByName backs LookupAlgorithm; selection is by name equality.
var algorithmsByName = map[string]Algorithm{
	AlgoAES128CBC.Name: AlgoAES128CBC,
	AlgoAES256CBC.Name: AlgoAES256CBC,
	AlgoSHA256.Name:    AlgoSHA256,
}

// LookupAlgorithm resolves an algorithm by its wire name, failing with
// UnknownAlgorithm when the name isn't one of the catalog entries.
func LookupAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmsByName[name]; ok {
		return a, nil
	}
	return Algorithm{}, newErr(UnknownAlgorithm, "LookupAlgorithm", "unknown algorithm %q", name)
}

// Named option profiles (§3).
var (
	DefaultEncryptionOptions = Options{SaltBits: 256, Algorithm: AlgoAES256CBC, Iterations: 1}
	DefaultIntegrityOptions  = Options{SaltBits: 256, Algorithm: AlgoSHA256, Iterations: 1}
)

// Context is the per-call state bundle: the two Options profiles in effect,
// plus the last error kind/message/provider-code the core recorded. It is
// caller-owned, mutated only by the core on error, and must not be shared
// concurrently across Seal/Unseal calls (§5).
type Context struct {
	EncryptionOptions Options
	IntegrityOptions  Options

	LastErrorKind         Kind
	LastErrorMessage      string
	LastProviderErrorCode int
}

// NewContext returns a Context configured with the wire-default option
// profiles.
func NewContext() *Context {
	return &Context{
		EncryptionOptions: DefaultEncryptionOptions,
		IntegrityOptions:  DefaultIntegrityOptions,
	}
}

// PasswordEntry is one row of a password-rotation table: an id and the
// password it resolves to. Neither field may contain the delimiter byte.
type PasswordEntry struct {
	ID       []byte
	Password []byte
}

// PasswordTable is an ordered sequence of PasswordEntry; Resolve does a
// first-match lookup by id (§4.7).
type PasswordTable []PasswordEntry

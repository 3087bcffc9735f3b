package domain

// StoreMode selects how the keystore is protected at rest.
type StoreMode string

const (
	// StoreModeNone disables persistence entirely.
	StoreModeNone StoreMode = "none"
	// StoreModePlatform delegates protection to an OS per-user service.
	StoreModePlatform StoreMode = "os"
	// StoreModePassword derives the store key from a password.
	StoreModePassword StoreMode = "pw"
)

// Valid reports whether m is a known mode.
func (m StoreMode) Valid() bool {
	switch m {
	case StoreModeNone, StoreModePlatform, StoreModePassword:
		return true
	}
	return false
}

// PlatformProtector is the OS-provided per-user protection service used by
// StoreModePlatform. Implementations live outside the core; when none is
// wired the store reports ErrPlatformUnavailable.
type PlatformProtector interface {
	Protect(plaintext []byte) ([]byte, error)
	Unprotect(blob []byte) ([]byte, error)
}

// KeystoreStore persists the keystore between sessions.
type KeystoreStore interface {
	Save(mode StoreMode, password string, ks *Keystore) error
	Load(mode StoreMode, password string) (*Keystore, error)
	Exists() bool
}

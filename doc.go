// Package envar holds the runtime half of the envargen code generator:
// the typed environment-variable readers that generated constructors call.
//
// envargen synthesizes a New<Type>() constructor for a struct, binding every
// field to an environment variable:
//
//	//go:generate envargen -type Config
//	type Config struct {
//		port  uint16 `env:"DB_CONNECTION_PORT"`
//		host  string `env:"DB_CONNECTION_HOST"`
//		debug *bool
//	}
//
// generates
//
//	func NewConfig() Config {
//		return Config{
//			port:  envar.MustUint16("DB_CONNECTION_PORT"),
//			host:  envar.MustString("DB_CONNECTION_HOST"),
//			debug: envar.OptBool("DEBUG"),
//		}
//	}
//
// # Binding rules
//
// The `env` tag names the variable explicitly. Without a tag the variable is
// the field name uppercased with no other transformation: dbHost binds to
// DBHOST, not DB_HOST.
//
// A pointer field is optional: an unset variable yields nil. Every other
// field is required. Required variables are checked twice: once while
// envargen runs (a missing variable fails the build) and again when the
// constructor executes (a missing variable panics). A set but unparsable
// value always panics, pointer field or not.
//
// # Supported field types
//
//   - string, bool, int (all sizes), uint (all sizes), float32, float64
//   - time.Duration, time.Time (RFC3339 or Unix seconds)
//   - url.URL, net.IP, net/mail.Address
//   - log/slog.Level (debug|info|warn|error or integer)
//   - math/big.Int (base-10)
//   - github.com/google/uuid.UUID
//   - github.com/shopspring/decimal.Decimal
//   - k8s.io/apimachinery/pkg/api/resource.Quantity (250m, 1.5Gi, ...)
//   - github.com/expr-lang/expr/vm.Program (compiled expressions)
//
// The Must* and Opt* functions in this package are exported for the
// generated code; they are not intended as a general-purpose API, but
// nothing stops hand-written code from calling them.
package envar

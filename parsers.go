package envar

import (
	"fmt"
	"log/slog"
	"math/big"
	"net"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"k8s.io/apimachinery/pkg/api/resource"
)

// parseSigned returns a parser for a signed integer type of the given bit size.
func parseSigned[T int | int8 | int16 | int32 | int64](bits int) func(string) (T, error) {
	return func(raw string) (T, error) {
		n, err := strconv.ParseInt(raw, 10, bits)
		return T(n), err
	}
}

// parseUnsigned returns a parser for an unsigned integer type of the given bit size.
func parseUnsigned[T uint | uint8 | uint16 | uint32 | uint64](bits int) func(string) (T, error) {
	return func(raw string) (T, error) {
		n, err := strconv.ParseUint(raw, 10, bits)
		return T(n), err
	}
}

// parseFloat returns a parser for a float type of the given bit size.
func parseFloat[T float32 | float64](bits int) func(string) (T, error) {
	return func(raw string) (T, error) {
		f, err := strconv.ParseFloat(raw, bits)
		return T(f), err
	}
}

func parseString(raw string) (string, error) { return raw, nil }

func parseTime(raw string) (time.Time, error) {
	// RFC3339 first, Unix seconds as fallback
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(unix, 0), nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: must be RFC3339 format or Unix seconds", raw)
}

func parseURL(raw string) (url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return url.URL{}, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	return *u, nil
}

func parseIP(raw string) (net.IP, error) {
	ip := net.ParseIP(raw)
	if ip == nil {
		return nil, fmt.Errorf("invalid IP address %q", raw)
	}
	return ip, nil
}

func parseMailAddress(raw string) (mail.Address, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return mail.Address{}, fmt.Errorf("invalid email address %q: %w", raw, err)
	}
	return *addr, nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		if level, err := strconv.Atoi(raw); err == nil {
			return slog.Level(level), nil
		}
		return 0, fmt.Errorf("invalid slog level %q: must be debug|info|warn|error or integer", raw)
	}
}

func parseBigInt(raw string) (big.Int, error) {
	bi := new(big.Int)
	if _, ok := bi.SetString(raw, 10); !ok {
		return big.Int{}, fmt.Errorf("invalid big.Int %q: must be base-10 integer", raw)
	}
	return *bi, nil
}

func parseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	return d, nil
}

func parseQuantity(raw string) (resource.Quantity, error) {
	q, err := resource.ParseQuantity(raw)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("invalid k8s quantity %q: %w", raw, err)
	}
	return q, nil
}

func parseProgram(raw string) (vm.Program, error) {
	program, err := expr.Compile(raw)
	if err != nil {
		return vm.Program{}, fmt.Errorf("failed to compile expression %q: %w", raw, err)
	}
	return *program, nil
}

// MustString reads a required string variable.
func MustString(name string) string { return must(name, parseString) }

// OptString reads an optional string variable.
func OptString(name string) *string { return opt(name, parseString) }

// MustBool reads a required bool variable (parsed with strconv.ParseBool).
func MustBool(name string) bool { return must(name, strconv.ParseBool) }

// OptBool reads an optional bool variable.
func OptBool(name string) *bool { return opt(name, strconv.ParseBool) }

// MustInt reads a required int variable.
func MustInt(name string) int { return must(name, parseSigned[int](strconv.IntSize)) }

// OptInt reads an optional int variable.
func OptInt(name string) *int { return opt(name, parseSigned[int](strconv.IntSize)) }

// MustInt8 reads a required int8 variable.
func MustInt8(name string) int8 { return must(name, parseSigned[int8](8)) }

// OptInt8 reads an optional int8 variable.
func OptInt8(name string) *int8 { return opt(name, parseSigned[int8](8)) }

// MustInt16 reads a required int16 variable.
func MustInt16(name string) int16 { return must(name, parseSigned[int16](16)) }

// OptInt16 reads an optional int16 variable.
func OptInt16(name string) *int16 { return opt(name, parseSigned[int16](16)) }

// MustInt32 reads a required int32 variable.
func MustInt32(name string) int32 { return must(name, parseSigned[int32](32)) }

// OptInt32 reads an optional int32 variable.
func OptInt32(name string) *int32 { return opt(name, parseSigned[int32](32)) }

// MustInt64 reads a required int64 variable.
func MustInt64(name string) int64 { return must(name, parseSigned[int64](64)) }

// OptInt64 reads an optional int64 variable.
func OptInt64(name string) *int64 { return opt(name, parseSigned[int64](64)) }

// MustUint reads a required uint variable.
func MustUint(name string) uint { return must(name, parseUnsigned[uint](strconv.IntSize)) }

// OptUint reads an optional uint variable.
func OptUint(name string) *uint { return opt(name, parseUnsigned[uint](strconv.IntSize)) }

// MustUint8 reads a required uint8 variable.
func MustUint8(name string) uint8 { return must(name, parseUnsigned[uint8](8)) }

// OptUint8 reads an optional uint8 variable.
func OptUint8(name string) *uint8 { return opt(name, parseUnsigned[uint8](8)) }

// MustUint16 reads a required uint16 variable.
func MustUint16(name string) uint16 { return must(name, parseUnsigned[uint16](16)) }

// OptUint16 reads an optional uint16 variable.
func OptUint16(name string) *uint16 { return opt(name, parseUnsigned[uint16](16)) }

// MustUint32 reads a required uint32 variable.
func MustUint32(name string) uint32 { return must(name, parseUnsigned[uint32](32)) }

// OptUint32 reads an optional uint32 variable.
func OptUint32(name string) *uint32 { return opt(name, parseUnsigned[uint32](32)) }

// MustUint64 reads a required uint64 variable.
func MustUint64(name string) uint64 { return must(name, parseUnsigned[uint64](64)) }

// OptUint64 reads an optional uint64 variable.
func OptUint64(name string) *uint64 { return opt(name, parseUnsigned[uint64](64)) }

// MustFloat32 reads a required float32 variable.
func MustFloat32(name string) float32 { return must(name, parseFloat[float32](32)) }

// OptFloat32 reads an optional float32 variable.
func OptFloat32(name string) *float32 { return opt(name, parseFloat[float32](32)) }

// MustFloat64 reads a required float64 variable.
func MustFloat64(name string) float64 { return must(name, parseFloat[float64](64)) }

// OptFloat64 reads an optional float64 variable.
func OptFloat64(name string) *float64 { return opt(name, parseFloat[float64](64)) }

// MustDuration reads a required time.Duration variable (time.ParseDuration syntax).
func MustDuration(name string) time.Duration { return must(name, time.ParseDuration) }

// OptDuration reads an optional time.Duration variable.
func OptDuration(name string) *time.Duration { return opt(name, time.ParseDuration) }

// MustTime reads a required time.Time variable, RFC3339 or Unix seconds.
func MustTime(name string) time.Time { return must(name, parseTime) }

// OptTime reads an optional time.Time variable.
func OptTime(name string) *time.Time { return opt(name, parseTime) }

// MustURL reads a required url.URL variable.
func MustURL(name string) url.URL { return must(name, parseURL) }

// OptURL reads an optional url.URL variable.
func OptURL(name string) *url.URL { return opt(name, parseURL) }

// MustIP reads a required net.IP variable (IPv4 or IPv6).
func MustIP(name string) net.IP { return must(name, parseIP) }

// OptIP reads an optional net.IP variable.
func OptIP(name string) *net.IP { return opt(name, parseIP) }

// MustMailAddress reads a required mail.Address variable.
func MustMailAddress(name string) mail.Address { return must(name, parseMailAddress) }

// OptMailAddress reads an optional mail.Address variable.
func OptMailAddress(name string) *mail.Address { return opt(name, parseMailAddress) }

// MustLevel reads a required slog.Level variable (debug|info|warn|error or integer).
func MustLevel(name string) slog.Level { return must(name, parseLevel) }

// OptLevel reads an optional slog.Level variable.
func OptLevel(name string) *slog.Level { return opt(name, parseLevel) }

// MustBigInt reads a required big.Int variable (base-10).
func MustBigInt(name string) big.Int { return must(name, parseBigInt) }

// OptBigInt reads an optional big.Int variable.
func OptBigInt(name string) *big.Int { return opt(name, parseBigInt) }

// MustUUID reads a required uuid.UUID variable.
func MustUUID(name string) uuid.UUID { return must(name, uuid.Parse) }

// OptUUID reads an optional uuid.UUID variable.
func OptUUID(name string) *uuid.UUID { return opt(name, uuid.Parse) }

// MustDecimal reads a required decimal.Decimal variable.
func MustDecimal(name string) decimal.Decimal { return must(name, parseDecimal) }

// OptDecimal reads an optional decimal.Decimal variable.
func OptDecimal(name string) *decimal.Decimal { return opt(name, parseDecimal) }

// MustQuantity reads a required Kubernetes resource.Quantity variable (e.g. 250m, 1.5Gi).
func MustQuantity(name string) resource.Quantity { return must(name, parseQuantity) }

// OptQuantity reads an optional resource.Quantity variable.
func OptQuantity(name string) *resource.Quantity { return opt(name, parseQuantity) }

// MustProgram reads a required vm.Program variable, compiling the value as an
// expr-lang expression.
func MustProgram(name string) vm.Program { return must(name, parseProgram) }

// OptProgram reads an optional vm.Program variable.
func OptProgram(name string) *vm.Program { return opt(name, parseProgram) }

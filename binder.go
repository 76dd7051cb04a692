package go4sqlite

import (
	"fmt"
	"os"
	"strings"

	"github.com/go4sqlite/go4sqlite/internal/sqlitec"
	"github.com/orsinium-labs/enum"
)

// FilePath marks an Execute argument whose referenced file contents are
// read in full and bound as a BLOB parameter.
type FilePath string

// bindKind is the closed set of parameter kinds the binder maps onto the
// engine's bind calls.
type bindKind enum.Member[string]

var (
	bindKindNull    = bindKind{Value: "null"}
	bindKindInteger = bindKind{Value: "integer"}
	bindKindFloat   = bindKind{Value: "float"}
	bindKindText    = bindKind{Value: "text"}
	bindKindBlob    = bindKind{Value: "blob"}
)

// boundValue is an Execute argument normalized to its bind kind and
// payload.
type boundValue struct {
	kind    bindKind
	integer int64
	float   float64
	text    string
	blob    []byte
}

// classify maps one Execute argument into the closed bind-kind set.
//
// Strings bind as TEXT unless they contain an embedded NUL byte, in which
// case they bind as a BLOB of their exact byte length; []byte always binds
// as a BLOB. This distinction matters for binary values that legitimately
// contain zero bytes.
func classify(arg any) (boundValue, error) {
	switch v := arg.(type) {
	case nil:
		return boundValue{kind: bindKindNull}, nil
	case int:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case int8:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case int16:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case int32:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case int64:
		return boundValue{kind: bindKindInteger, integer: v}, nil
	case uint:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case uint8:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case uint16:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case uint32:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case uint64:
		return boundValue{kind: bindKindInteger, integer: int64(v)}, nil
	case bool:
		n := int64(0)
		if v {
			n = 1
		}
		return boundValue{kind: bindKindInteger, integer: n}, nil
	case float32:
		return boundValue{kind: bindKindFloat, float: float64(v)}, nil
	case float64:
		return boundValue{kind: bindKindFloat, float: v}, nil
	case string:
		if strings.IndexByte(v, 0) >= 0 {
			return boundValue{kind: bindKindBlob, blob: []byte(v)}, nil
		}
		return boundValue{kind: bindKindText, text: v}, nil
	case []byte:
		return boundValue{kind: bindKindBlob, blob: v}, nil
	case FilePath:
		data, err := os.ReadFile(string(v))
		if err != nil {
			return boundValue{}, &InvalidPathError{Path: string(v), Err: err}
		}
		return boundValue{kind: bindKindBlob, blob: data}, nil
	}

	return boundValue{}, &UnsupportedBindTypeError{Type: fmt.Sprintf("%T", arg)}
}

// binder translates a heterogeneous argument list into positional bind
// calls against a compiled statement.
type binder struct {
	stmt     *sqlitec.Stmt
	bindPosn int // 1-indexed
}

func newBinder(stmt *sqlitec.Stmt) *binder {
	return &binder{stmt: stmt}
}

// bind validates the argument count against the statement's declared
// parameter count, resets prior execution state, and binds each argument
// in positional order.
func (b *binder) bind(args ...any) error {
	declared := b.stmt.BindParameterCount()
	if len(args) != declared {
		return &BindCountError{Declared: declared, Given: len(args)}
	}

	if err := b.stmt.Reset(); err != nil {
		return fmt.Errorf("failed to reset statement: %w", err)
	}
	b.bindPosn = 0

	for _, arg := range args {
		b.bindPosn++
		if err := b.bindOne(arg); err != nil {
			return err
		}
	}

	return nil
}

func (b *binder) bindOne(arg any) error {
	val, err := classify(arg)
	if err != nil {
		return err
	}

	switch val.kind {
	case bindKindNull:
		err = b.stmt.BindNull(b.bindPosn)
	case bindKindInteger:
		err = b.stmt.BindInt64(b.bindPosn, val.integer)
	case bindKindFloat:
		err = b.stmt.BindFloat64(b.bindPosn, val.float)
	case bindKindText:
		err = b.stmt.BindText(b.bindPosn, val.text)
	case bindKindBlob:
		err = b.stmt.BindBlob(b.bindPosn, val.blob)
	}
	if err != nil {
		return fmt.Errorf("failed to bind param %d: %w", b.bindPosn, err)
	}

	return nil
}

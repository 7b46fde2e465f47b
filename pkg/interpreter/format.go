package interpreter

import (
	"math"
	"strconv"
	"strings"

	"github.com/pakhi-lang/pakhi/pkg/lexer"
	"github.com/pakhi-lang/pakhi/pkg/runtime"
)

// FormatValue renders v in the canonical form দেখাও, _দেখাও, and _স্ট্রিং share:
// Bengali-digit numbers, সত্য/মিথ্যা booleans, unquoted strings, শূন্য
// for null, bracketed lists, @{...} records, and a stable <ফাং> token
// for any callable.
func FormatValue(v runtime.Value) string {
	switch val := v.(type) {
	case runtime.NumberValue:
		return formatNumber(val.Val)
	case runtime.BoolValue:
		if val.Val {
			return "সত্য"
		}
		return "মিথ্যা"
	case runtime.StringValue:
		return val.Val
	case runtime.NilValue:
		return "শূন্য"
	case runtime.ListValue:
		elems := *val.Elements
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = FormatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case runtime.RecordValue:
		keys := val.Keys()
		parts := make([]string, len(keys))
		for i, k := range keys {
			fv, _ := val.Get(k)
			parts[i] = "\"" + k + "\" -> " + FormatValue(fv)
		}
		return "@{" + strings.Join(parts, ", ") + "}"
	case *runtime.FunctionValue, *runtime.NativeFunctionValue:
		return "<ফাং>"
	default:
		return ""
	}
}

func formatNumber(f float64) string {
	var s string
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		s = strconv.FormatFloat(f, 'f', 0, 64)
	} else {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return lexer.ToBengaliDigits(s)
}

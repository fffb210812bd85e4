package errno

import "fmt"

// Errno defines the error code logic. Codes are grouped by concern:
// 10100+ hex, 10200+ codec framing, 10300+ codec semantics, 10400+ crypto,
// 10500+ builder, 10600+ amounts.
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so contextualized variants
// produced by Withf still match their sentinel via errors.Is.
func (e Errno) Is(target error) bool {
	switch typed := target.(type) {
	case *Errno:
		return typed.Code == e.Code
	case Errno:
		return typed.Code == e.Code
	}
	return false
}

// Withf returns a copy of e whose message is extended with formatted context
// (observed length, field name, code). The code is preserved.
func (e Errno) Withf(format string, args ...any) Errno {
	return Errno{
		Code:    e.Code,
		Message: e.Message + ": " + fmt.Sprintf(format, args...),
	}
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	switch typed := err.(type) {
	case *Errno:
		return typed.Code, typed.Message
	case Errno:
		return typed.Code, typed.Message
	default:
		return InternalError.Code, err.Error()
	}
}

// Common
var (
	OK            = Errno{Code: 0, Message: "Success"}
	InternalError = Errno{Code: 10001, Message: "Internal error"}
)

// Hex (10100+)
var (
	ErrHexOddLength = Errno{Code: 10101, Message: "Hex string has odd length"}
	ErrHexDigit     = Errno{Code: 10102, Message: "Hex string contains a non-hex character"}
	ErrHexLength    = Errno{Code: 10103, Message: "Hex string decodes to the wrong length"}
)

// Codec framing (10200+)
var (
	ErrRLPTruncated      = Errno{Code: 10201, Message: "RLP input truncated"}
	ErrRLPOversizePrefix = Errno{Code: 10202, Message: "RLP length prefix oversized or non-canonical"}
	ErrRLPExpectedString = Errno{Code: 10203, Message: "RLP list found where a byte string was expected"}
	ErrRLPExpectedList   = Errno{Code: 10204, Message: "RLP byte string found where a list was expected"}
	ErrRLPNonMinimal     = Errno{Code: 10205, Message: "RLP scalar has leading zero bytes"}
	ErrRLPScalarOverflow = Errno{Code: 10206, Message: "RLP scalar does not fit the target width"}
	ErrRLPTrailing       = Errno{Code: 10207, Message: "RLP input has trailing bytes"}
	ErrValueLength       = Errno{Code: 10208, Message: "Fixed-width value has the wrong length"}
	ErrOptionalArity     = Errno{Code: 10209, Message: "Optional wrapper list holds more than one element"}
)

// Codec semantics (10300+)
var (
	ErrUnknownTxVersion   = Errno{Code: 10301, Message: "Unknown transaction version"}
	ErrUnknownTxType      = Errno{Code: 10302, Message: "Unknown transaction type code"}
	ErrUnknownNetwork     = Errno{Code: 10303, Message: "Unknown network code"}
	ErrUnknownPayloadType = Errno{Code: 10304, Message: "Unknown payload type code"}
	ErrUnknownVoteType    = Errno{Code: 10305, Message: "Unknown vote type code"}
)

// Crypto (10400+)
var (
	ErrInvalidPrivateKey = Errno{Code: 10401, Message: "Private key is zero or not below the curve order"}
	ErrInvalidSignature  = Errno{Code: 10402, Message: "Invalid signature"}
	ErrInvalidSeed       = Errno{Code: 10403, Message: "Invalid BIP-39 seed"}
	ErrInvalidMnemonic   = Errno{Code: 10404, Message: "Invalid BIP-39 mnemonic"}
	ErrInvalidPath       = Errno{Code: 10405, Message: "Invalid derivation path"}
)

// Builder (10500+)
var (
	ErrMissingField   = Errno{Code: 10501, Message: "Required transaction field is missing"}
	ErrForbiddenField = Errno{Code: 10502, Message: "Field is not allowed for this transaction type"}
	ErrInvalidField   = Errno{Code: 10503, Message: "Transaction field has an invalid value"}
)

// Amounts (10600+)
var (
	ErrAmountNegative  = Errno{Code: 10601, Message: "Amount must not be negative"}
	ErrAmountPrecision = Errno{Code: 10602, Message: "Amount has more fractional digits than the token allows"}
)

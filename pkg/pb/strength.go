// Package pb defines the wire contract of the password strength service.
// The messages of api/proto/pwstrength/v1/strength.proto are carried as
// dynamic protobuf messages built from the registered file descriptor and
// converted to the typed request and response structs below.
package pb

import (
	"fmt"

	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// Proto field names.
const (
	FieldPassword       = "password"
	FieldSpecialChars   = "special_chars"
	FieldVerdict        = "verdict"
	FieldStrength       = "strength"
	FieldScore          = "score"
	FieldRunScore       = "run_score"
	FieldRunDetected    = "run_detected"
	FieldLength         = "length"
	FieldLowercaseCount = "lowercase_count"
	FieldUppercaseCount = "uppercase_count"
	FieldDigitCount     = "digit_count"
	FieldSpecialCount   = "special_count"
	FieldDiagnostics    = "diagnostics"
)

// EvaluateRequest asks for the strength of one password. An empty
// SpecialChars selects the server's configured set.
type EvaluateRequest struct {
	Password     string
	SpecialChars string
}

// EvaluateResponse carries the analysis of one password.
type EvaluateResponse struct {
	Verdict        string
	Strength       float64
	Score          int64
	RunScore       float64
	RunDetected    bool
	Length         uint32
	LowercaseCount uint32
	UppercaseCount uint32
	DigitCount     uint32
	SpecialCount   uint32
	Diagnostics    []string
}

// ToMessage encodes the request as a pwstrength.v1.EvaluateRequest.
func (r *EvaluateRequest) ToMessage() *dynamicpb.Message {
	m := dynamicpb.NewMessage(evaluateRequestDesc)
	setString(m, FieldPassword, r.Password)
	setString(m, FieldSpecialChars, r.SpecialChars)
	return m
}

// EvaluateRequestFromMessage decodes a pwstrength.v1.EvaluateRequest. A nil
// message yields nil.
func EvaluateRequestFromMessage(m protoreflect.ProtoMessage) (*EvaluateRequest, error) {
	if m == nil {
		return nil, nil
	}
	msg, err := checkMessage(m, evaluateRequestDesc)
	if err != nil {
		return nil, err
	}
	return &EvaluateRequest{
		Password:     get(msg, FieldPassword).String(),
		SpecialChars: get(msg, FieldSpecialChars).String(),
	}, nil
}

// ToMessage encodes the response as a pwstrength.v1.EvaluateResponse.
func (r *EvaluateResponse) ToMessage() *dynamicpb.Message {
	m := dynamicpb.NewMessage(evaluateResponseDesc)
	setString(m, FieldVerdict, r.Verdict)
	set(m, FieldStrength, protoreflect.ValueOfFloat64(r.Strength))
	set(m, FieldScore, protoreflect.ValueOfInt64(r.Score))
	set(m, FieldRunScore, protoreflect.ValueOfFloat64(r.RunScore))
	set(m, FieldRunDetected, protoreflect.ValueOfBool(r.RunDetected))
	set(m, FieldLength, protoreflect.ValueOfUint32(r.Length))
	set(m, FieldLowercaseCount, protoreflect.ValueOfUint32(r.LowercaseCount))
	set(m, FieldUppercaseCount, protoreflect.ValueOfUint32(r.UppercaseCount))
	set(m, FieldDigitCount, protoreflect.ValueOfUint32(r.DigitCount))
	set(m, FieldSpecialCount, protoreflect.ValueOfUint32(r.SpecialCount))
	if len(r.Diagnostics) > 0 {
		list := m.Mutable(evaluateResponseDesc.Fields().ByName(FieldDiagnostics)).List()
		for _, d := range r.Diagnostics {
			list.Append(protoreflect.ValueOfString(d))
		}
	}
	return m
}

// EvaluateResponseFromMessage decodes a pwstrength.v1.EvaluateResponse.
func EvaluateResponseFromMessage(m protoreflect.ProtoMessage) (*EvaluateResponse, error) {
	if m == nil {
		return nil, fmt.Errorf("empty response")
	}
	msg, err := checkMessage(m, evaluateResponseDesc)
	if err != nil {
		return nil, err
	}
	resp := &EvaluateResponse{
		Verdict:        get(msg, FieldVerdict).String(),
		Strength:       get(msg, FieldStrength).Float(),
		Score:          get(msg, FieldScore).Int(),
		RunScore:       get(msg, FieldRunScore).Float(),
		RunDetected:    get(msg, FieldRunDetected).Bool(),
		Length:         uint32(get(msg, FieldLength).Uint()),
		LowercaseCount: uint32(get(msg, FieldLowercaseCount).Uint()),
		UppercaseCount: uint32(get(msg, FieldUppercaseCount).Uint()),
		DigitCount:     uint32(get(msg, FieldDigitCount).Uint()),
		SpecialCount:   uint32(get(msg, FieldSpecialCount).Uint()),
	}
	list := get(msg, FieldDiagnostics).List()
	for i := 0; i < list.Len(); i++ {
		resp.Diagnostics = append(resp.Diagnostics, list.Get(i).String())
	}
	return resp, nil
}

func checkMessage(m protoreflect.ProtoMessage, want protoreflect.MessageDescriptor) (protoreflect.Message, error) {
	msg := m.ProtoReflect()
	if got := msg.Descriptor().FullName(); got != want.FullName() {
		return nil, fmt.Errorf("unexpected message %s, want %s", got, want.FullName())
	}
	return msg, nil
}

func get(m protoreflect.Message, name protoreflect.Name) protoreflect.Value {
	return m.Get(m.Descriptor().Fields().ByName(name))
}

func set(m *dynamicpb.Message, name protoreflect.Name, v protoreflect.Value) {
	m.Set(m.Descriptor().Fields().ByName(name), v)
}

func setString(m *dynamicpb.Message, name protoreflect.Name, s string) {
	set(m, name, protoreflect.ValueOfString(s))
}

package pb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/dynamicpb"
	"google.golang.org/protobuf/types/known/emptypb"
)

func TestDescriptorRegistered(t *testing.T) {
	d, err := protoregistry.GlobalFiles.FindDescriptorByName(ServiceName)
	require.NoError(t, err)

	svc, ok := d.(protoreflect.ServiceDescriptor)
	require.True(t, ok)
	assert.Equal(t, FileName, svc.ParentFile().Path())

	method := svc.Methods().ByName("Evaluate")
	require.NotNil(t, method)
	assert.Equal(t, protoreflect.FullName("pwstrength.v1.EvaluateRequest"), method.Input().FullName())
	assert.Equal(t, protoreflect.FullName("pwstrength.v1.EvaluateResponse"), method.Output().FullName())
	assert.Equal(t, "/"+string(svc.FullName())+"/Evaluate", PasswordStrengthService_Evaluate_FullMethodName)

	diags := method.Output().Fields().ByName(FieldDiagnostics)
	require.NotNil(t, diags)
	assert.True(t, diags.IsList())
}

func TestEvaluateRequestWireRoundTrip(t *testing.T) {
	raw, err := proto.Marshal((&EvaluateRequest{Password: "p@ss", SpecialChars: "@"}).ToMessage())
	require.NoError(t, err)

	decoded := dynamicpb.NewMessage(evaluateRequestDesc)
	require.NoError(t, proto.Unmarshal(raw, decoded))

	got, err := EvaluateRequestFromMessage(decoded)
	require.NoError(t, err)
	assert.Equal(t, &EvaluateRequest{Password: "p@ss", SpecialChars: "@"}, got)

	got, err = EvaluateRequestFromMessage(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestEvaluateRequestFromMessage_OptionalSpecialChars(t *testing.T) {
	got, err := EvaluateRequestFromMessage((&EvaluateRequest{Password: "secret"}).ToMessage())
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Password)
	assert.Empty(t, got.SpecialChars)
}

func TestEvaluateResponseWireRoundTrip(t *testing.T) {
	in := &EvaluateResponse{
		Verdict:        "Medium",
		Strength:       48.9143,
		Score:          49,
		RunScore:       14.5556,
		Length:         10,
		LowercaseCount: 7,
		UppercaseCount: 1,
		DigitCount:     1,
		SpecialCount:   1,
		Diagnostics:    []string{"no digits", "no uppercase letters"},
	}

	raw, err := proto.Marshal(in.ToMessage())
	require.NoError(t, err)

	decoded := dynamicpb.NewMessage(evaluateResponseDesc)
	require.NoError(t, proto.Unmarshal(raw, decoded))

	out, err := EvaluateResponseFromMessage(decoded)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFromMessage_WrongType(t *testing.T) {
	_, err := EvaluateRequestFromMessage(&emptypb.Empty{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want pwstrength.v1.EvaluateRequest")

	_, err = EvaluateResponseFromMessage((&EvaluateRequest{}).ToMessage())
	require.Error(t, err)

	_, err = EvaluateResponseFromMessage(nil)
	assert.Error(t, err)
}

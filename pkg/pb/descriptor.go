package pb

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// FileName is the registered path of api/proto/pwstrength/v1/strength.proto.
const FileName = "pwstrength/v1/strength.proto"

// File_pwstrength_v1_strength_proto is the descriptor of strength.proto,
// registered in protoregistry.GlobalFiles so server reflection can serve it.
var File_pwstrength_v1_strength_proto protoreflect.FileDescriptor

var (
	evaluateRequestDesc  protoreflect.MessageDescriptor
	evaluateResponseDesc protoreflect.MessageDescriptor
)

func init() {
	fd, err := protodesc.NewFile(fileDescriptorProto(), protoregistry.GlobalFiles)
	if err != nil {
		panic(fmt.Sprintf("pb: invalid descriptor for %s: %v", FileName, err))
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic(fmt.Sprintf("pb: register %s: %v", FileName, err))
	}
	File_pwstrength_v1_strength_proto = fd
	evaluateRequestDesc = fd.Messages().ByName("EvaluateRequest")
	evaluateResponseDesc = fd.Messages().ByName("EvaluateResponse")
}

// fileDescriptorProto mirrors strength.proto field for field.
func fileDescriptorProto() *descriptorpb.FileDescriptorProto {
	field := func(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
		return &descriptorpb.FieldDescriptorProto{
			Name:   proto.String(name),
			Number: proto.Int32(number),
			Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:   typ.Enum(),
		}
	}
	repeated := func(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
		f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		return f
	}

	const (
		tString = descriptorpb.FieldDescriptorProto_TYPE_STRING
		tDouble = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
		tInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
		tBool   = descriptorpb.FieldDescriptorProto_TYPE_BOOL
		tUint32 = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	)

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String(FileName),
		Package: proto.String("pwstrength.v1"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/AmmannChristian/pwstrength/pkg/pb"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("EvaluateRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field(FieldPassword, 1, tString),
					field(FieldSpecialChars, 2, tString),
				},
			},
			{
				Name: proto.String("EvaluateResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field(FieldVerdict, 1, tString),
					field(FieldStrength, 2, tDouble),
					field(FieldScore, 3, tInt64),
					field(FieldRunScore, 4, tDouble),
					field(FieldRunDetected, 5, tBool),
					field(FieldLength, 6, tUint32),
					field(FieldLowercaseCount, 7, tUint32),
					field(FieldUppercaseCount, 8, tUint32),
					field(FieldDigitCount, 9, tUint32),
					field(FieldSpecialCount, 10, tUint32),
					repeated(field(FieldDiagnostics, 11, tString)),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("PasswordStrengthService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       proto.String("Evaluate"),
						InputType:  proto.String(".pwstrength.v1.EvaluateRequest"),
						OutputType: proto.String(".pwstrength.v1.EvaluateResponse"),
					},
				},
			},
		},
	}
}

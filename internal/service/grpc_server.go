package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AmmannChristian/pwstrength/internal/metrics"
	"github.com/AmmannChristian/pwstrength/internal/middleware"
	"github.com/AmmannChristian/pwstrength/internal/strength"
	pb "github.com/AmmannChristian/pwstrength/pkg/pb"
)

const transportGRPC = "grpc"

// GRPCServer implements the PasswordStrengthService gRPC interface.
type GRPCServer struct {
	pb.UnimplementedPasswordStrengthServiceServer
	svc *StrengthService
}

// NewGRPCServer creates a new GRPCServer instance.
func NewGRPCServer(svc *StrengthService) *GRPCServer {
	return &GRPCServer{
		svc: svc,
	}
}

// Evaluate handles gRPC password strength requests. The password itself is
// never logged or returned.
func (s *GRPCServer) Evaluate(ctx context.Context, req *pb.EvaluateRequest) (*pb.EvaluateResponse, error) {
	if req == nil {
		metrics.RecordError(transportGRPC, "invalid_argument")
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	startTime := time.Now()
	analysis, err := s.svc.Evaluate(req.Password, req.SpecialChars)
	if err != nil {
		if errors.Is(err, ErrSpecialCharsTooLong) {
			metrics.RecordError(transportGRPC, "special_chars_too_long")
			return nil, status.Errorf(codes.InvalidArgument, "special_chars exceeds %d characters", MaxSpecialChars)
		}
		if errors.Is(err, strength.ErrInputTooLarge) {
			metrics.RecordError(transportGRPC, "too_long")
			return nil, status.Errorf(codes.InvalidArgument, "password exceeds %d characters", s.svc.MaxLength())
		}
		metrics.RecordError(transportGRPC, "internal")
		return nil, status.Error(codes.Internal, "evaluation failed")
	}
	metrics.RecordDuration(transportGRPC, time.Since(startTime).Seconds())

	specialChars := req.SpecialChars
	if specialChars == "" {
		specialChars = s.svc.SpecialChars()
	}

	metrics.RecordEvaluation(transportGRPC, analysis.Verdict.String())
	metrics.RecordLength(transportGRPC, analysis.Length)
	if analysis.RunDetected() {
		metrics.RecordRunOverride(transportGRPC)
	} else {
		metrics.RecordStrength(transportGRPC, analysis.Strength)
	}

	log.Debug().
		Str("request_id", middleware.GetRequestID(ctx)).
		Str("verdict", analysis.Verdict.String()).
		Int("length", analysis.Length).
		Bool("run_detected", analysis.RunDetected()).
		Msg("password evaluated")

	return &pb.EvaluateResponse{
		Verdict:        analysis.Verdict.String(),
		Strength:       analysis.Strength,
		Score:          int64(analysis.Score()),
		RunScore:       analysis.RunScore,
		RunDetected:    analysis.RunDetected(),
		Length:         uint32(analysis.Length),
		LowercaseCount: uint32(analysis.LowercaseCount),
		UppercaseCount: uint32(analysis.UppercaseCount),
		DigitCount:     uint32(analysis.DigitCount),
		SpecialCount:   uint32(analysis.SpecialCount),
		Diagnostics:    strength.Diagnose(analysis, specialChars),
	}, nil
}

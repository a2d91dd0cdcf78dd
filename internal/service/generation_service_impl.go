package service

import (
	"context"

	"github.com/aryaduta/ecommerce-admin-service/internal/dto"
	"github.com/aryaduta/ecommerce-admin-service/internal/infrastructure/textgen"
)

type GenerationServiceImpl struct {
	generator textgen.TextGenerator
}

func CreateGenerationService(generator textgen.TextGenerator) GenerationService {
	return &GenerationServiceImpl{generator: generator}
}

func (s *GenerationServiceImpl) GenerateDescription(ctx context.Context, data dto.GenerateRequest) (resp dto.GenerateResponse, err error) {
	text, err := s.generator.GenerateDescription(ctx, data.Prompt, data.Keywords)
	if err != nil {
		return
	}

	resp.Text = text
	return resp, nil
}

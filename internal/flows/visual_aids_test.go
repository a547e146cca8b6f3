package flows

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/infatoz/sahayak-api/internal/generation"
	"github.com/infatoz/sahayak-api/internal/mocks"
	"github.com/infatoz/sahayak-api/internal/validation"
)

func TestDesignVisualAid(t *testing.T) {
	t.Parallel()

	t.Run("two-stage pipeline returns the image as a data URI", func(t *testing.T) {
		t.Parallel()

		media := &generation.Media{MIMEType: "image/png", Data: []byte("water-cycle-diagram")}

		mock := &mocks.MockGenerator{}
		mock.GenerateFn = func(ctx context.Context, req *generation.Request) (*generation.Result, error) {
			switch req.Model {
			case "text-model":
				return &generation.Result{Text: "A labeled diagram of the water cycle with arrows."}, nil
			case "image-model":
				return &generation.Result{Media: media}, nil
			default:
				t.Fatalf("unexpected model %q", req.Model)
				return nil, nil
			}
		}
		svc := newTestService(mock)

		out, err := svc.DesignVisualAid(context.Background(), VisualAidInput{
			Description: "the water cycle",
			Subject:     "Science",
			Style:       "Simple Line Drawing",
		})
		require.NoError(t, err)
		assert.Equal(t, media.DataURI(), out.Image,
			"the output image must be the exact data URI of the returned media")

		require.Equal(t, 2, mock.CallCount())

		instruction := mock.Request(0)
		assert.Contains(t, instruction.Prompt, "the water cycle")
		assert.Contains(t, instruction.Prompt, "Simple Line Drawing")
		assert.Empty(t, instruction.Modalities)

		imageReq := mock.Request(1)
		assert.Equal(t, "A labeled diagram of the water cycle with arrows.", imageReq.Prompt,
			"the image stage is prompted with the elaborated instruction, not the raw input")
		assert.Equal(t, []generation.Modality{generation.ModalityText, generation.ModalityImage}, imageReq.Modalities)
	})

	t.Run("missing style never reaches the model", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.MockGenerator{}
		svc := newTestService(mock)

		_, err := svc.DesignVisualAid(context.Background(), VisualAidInput{
			Description: "the water cycle",
			Subject:     "Science",
		})

		var vErr *validation.Error
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Style", vErr.Field)
		assert.Zero(t, mock.CallCount())
	})

	t.Run("empty instruction stops before the image stage", func(t *testing.T) {
		t.Parallel()

		mock := mocks.NewMockGeneratorWithResult(&generation.Result{Text: ""})
		svc := newTestService(mock)

		_, err := svc.DesignVisualAid(context.Background(), VisualAidInput{
			Description: "the water cycle",
			Subject:     "Science",
			Style:       "Diagram/Chart",
		})
		require.ErrorIs(t, err, generation.ErrEmptyResult)
		assert.Equal(t, 1, mock.CallCount(), "the image model is never invoked without an instruction")
	})

	t.Run("image stage returning no media fails", func(t *testing.T) {
		t.Parallel()

		mock := &mocks.MockGenerator{}
		mock.GenerateFn = func(ctx context.Context, req *generation.Request) (*generation.Result, error) {
			if req.Model == "text-model" {
				return &generation.Result{Text: "draw something"}, nil
			}
			return &generation.Result{Text: "no image, sorry"}, nil
		}
		svc := newTestService(mock)

		_, err := svc.DesignVisualAid(context.Background(), VisualAidInput{
			Description: "the water cycle",
			Subject:     "Science",
			Style:       "Watercolor",
		})
		require.ErrorIs(t, err, generation.ErrEmptyResult)
	})
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"wannatrack-ai/internal/service"
	mock_service "wannatrack-ai/internal/service/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOCRService_ExtractText(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		setup     func(images *mock_service.MockImageRecognizer, pdfs *mock_service.MockPDFTextExtractor)
		want      string
		wantErr   bool
		wantInput bool
	}{
		{
			name: "image goes to tesseract",
			path: "/tmp/receipt.JPG",
			setup: func(images *mock_service.MockImageRecognizer, _ *mock_service.MockPDFTextExtractor) {
				images.EXPECT().Recognize(gomock.Any(), "/tmp/receipt.JPG").Return("  ИТОГО 450 руб\n", nil)
			},
			want: "ИТОГО 450 руб",
		},
		{
			name: "pdf goes to fitz",
			path: "/tmp/receipt.pdf",
			setup: func(_ *mock_service.MockImageRecognizer, pdfs *mock_service.MockPDFTextExtractor) {
				pdfs.EXPECT().ExtractPDFText(gomock.Any(), "/tmp/receipt.pdf").Return("Total 10 USD", nil)
			},
			want: "Total 10 USD",
		},
		{
			name: "invalid utf8 is dropped",
			path: "/tmp/receipt.png",
			setup: func(images *mock_service.MockImageRecognizer, _ *mock_service.MockPDFTextExtractor) {
				images.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return("Total\xff 10", nil)
			},
			want: "Total 10",
		},
		{
			name:      "unsupported extension",
			path:      "/tmp/receipt.docx",
			setup:     func(*mock_service.MockImageRecognizer, *mock_service.MockPDFTextExtractor) {},
			wantErr:   true,
			wantInput: true,
		},
		{
			name: "engine error",
			path: "/tmp/receipt.png",
			setup: func(images *mock_service.MockImageRecognizer, _ *mock_service.MockPDFTextExtractor) {
				images.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return("", errors.New("tesseract missing"))
			},
			wantErr: true,
		},
		{
			name: "blank text",
			path: "/tmp/receipt.png",
			setup: func(images *mock_service.MockImageRecognizer, _ *mock_service.MockPDFTextExtractor) {
				images.EXPECT().Recognize(gomock.Any(), gomock.Any()).Return(" \n\t", nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			images := mock_service.NewMockImageRecognizer(ctrl)
			pdfs := mock_service.NewMockPDFTextExtractor(ctrl)
			tt.setup(images, pdfs)

			svc := service.NewOCRService(images, pdfs, zap.NewNop())
			got, err := svc.ExtractText(context.Background(), tt.path)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantInput, errors.Is(err, service.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsSupportedFormat(t *testing.T) {
	for _, ext := range []string{".jpg", ".JPEG", ".png", ".pdf", ".webp", ".tiff"} {
		assert.True(t, service.IsSupportedFormat(ext), ext)
	}
	for _, ext := range []string{"", ".txt", ".heic", ".docx"} {
		assert.False(t, service.IsSupportedFormat(ext), ext)
	}
}

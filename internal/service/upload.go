package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/ibeloyar/memestore/internal/model"
)

const defaultUploadURL = "https://api.imgbb.com/1/upload"

type imgbbResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// UploadImage forwards a base64-encoded image to the ImgBB API and returns
// the hosted URL. The API key never leaves the server; the admin UI talks
// only to this proxy.
func (s *Service) UploadImage(ctx context.Context, input model.UploadImageDTO) (*model.UploadImageResponse, *model.APIError) {
	if s.imgbbAPIKey == "" {
		// fail closed instead of forwarding without a key
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: model.ErrInternalServerMessage,
		}
	}

	if input.Image == "" {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrImageDataRequiredMessage,
		}
	}

	form := url.Values{}
	form.Set("key", s.imgbbAPIKey)
	form.Set("image", input.Image)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.uploadURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, internalError()
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, internalError()
	}
	defer resp.Body.Close()

	var result imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, internalError()
	}

	if resp.StatusCode != http.StatusOK || !result.Success {
		return nil, &model.APIError{
			Code:    http.StatusInternalServerError,
			Message: "failed to upload image",
		}
	}

	return &model.UploadImageResponse{URL: result.Data.URL}, nil
}

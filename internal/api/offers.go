package api

import (
	"context"
	"fmt"
	"mime"
	"net/http"

	"recruit-console/internal/dto"
)

func (c *Client) ListOffers(ctx context.Context) ([]dto.Offer, error) {
	var offers []dto.Offer
	if err := c.doJSON(ctx, http.MethodGet, "/offers/", nil, nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

func (c *Client) CreateOffer(ctx context.Context, req *dto.GenerateOfferRequest) (*dto.Offer, error) {
	var offer dto.Offer
	if err := c.doJSON(ctx, http.MethodPost, "/offers/", nil, req, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// DownloadOffer fetches the generated letter. The filename comes from the
// Content-Disposition hint when the backend provides one.
func (c *Client) DownloadOffer(ctx context.Context, id int) (*dto.OfferDocument, error) {
	body, headers, err := c.downloadRaw(ctx, fmt.Sprintf("/offers/%d", id))
	if err != nil {
		return nil, err
	}

	doc := &dto.OfferDocument{
		Filename:    fmt.Sprintf("offer_letter_%d.pdf", id),
		ContentType: headers.Get("Content-Type"),
		Data:        body,
	}
	if doc.ContentType == "" {
		doc.ContentType = "application/pdf"
	}
	if disposition := headers.Get("Content-Disposition"); disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				doc.Filename = name
			}
		}
	}
	return doc, nil
}

func (c *Client) DeleteOffer(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/offers/%d", id), nil, nil, nil)
}

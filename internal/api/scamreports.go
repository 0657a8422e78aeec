package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/errors"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/scamradar"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"go.uber.org/zap"
)

// AnalyzeOffer sends the offer text and optional screenshot to the
// AI-backed analysis endpoint and returns the normalized assessment. Image
// uploads go as multipart; text-only requests as JSON.
func (c *Client) AnalyzeOffer(ctx context.Context, offerText string, image []byte, filename string) (*scamradar.Analysis, error) {
	ctx, span := tracer.Start(ctx, "AnalyzeOffer")
	defer span.End()
	span.SetAttributes(
		telemetry.Int("offer.text_len", len(offerText)),
		telemetry.Int("offer.image_len", len(image)),
	)

	if offerText == "" && len(image) == 0 {
		return nil, errors.InvalidInput("offer text or image is required", nil)
	}
	if int64(len(image)) > c.config.UploadMaxSize {
		return nil, errors.InvalidInput("image exceeds upload size limit", nil)
	}

	var raw scamradar.RawAnalysis
	var err error
	if len(image) > 0 {
		err = c.analyzeMultipart(ctx, offerText, image, filename, &raw)
	} else {
		err = c.post(ctx, c.config.ScamAPIPath, map[string]string{"offerText": offerText}, &raw)
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	analysis := scamradar.Normalize(raw)
	span.SetAttributes(
		telemetry.Int("analysis.trust_score", analysis.TrustScore),
		telemetry.String("analysis.verdict", string(analysis.Verdict)),
	)
	return &analysis, nil
}

func (c *Client) analyzeMultipart(ctx context.Context, offerText string, image []byte, filename string, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if offerText != "" {
		if err := writer.WriteField("offerText", offerText); err != nil {
			return errors.Internal("writing multipart field", err)
		}
	}
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return errors.Internal("creating multipart file", err)
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		return errors.Internal("copying image data", err)
	}
	if err := writer.Close(); err != nil {
		return errors.Internal("closing multipart writer", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.config.ScamAPIPath, &buf)
	if err != nil {
		return errors.Internal("creating request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Unavailable("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.decodeError(resp, http.MethodPost, c.config.ScamAPIPath)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Internal("decoding response", err)
	}
	return nil
}

// ── Scam reports feed ───────────────────────────────────────────────────────

type ScamReportInput struct {
	OfferText string              `json:"offerText"`
	Employer  string              `json:"employer,omitempty"`
	Analysis  *scamradar.Analysis `json:"analysis,omitempty"`
}

func (c *Client) ListScamReports(ctx context.Context, search string) ([]scamradar.Report, error) {
	ctx, span := tracer.Start(ctx, "ListScamReports")
	defer span.End()

	query := url.Values{}
	if search != "" {
		query.Set("q", search)
	}

	var reports []scamradar.Report
	if err := c.get(ctx, "/scam-reports", query, &reports); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(telemetry.Int("reports.count", len(reports)))
	return reports, nil
}

func (c *Client) GetScamReport(ctx context.Context, id string) (*scamradar.Report, error) {
	ctx, span := tracer.Start(ctx, "GetScamReport")
	defer span.End()

	var report scamradar.Report
	if err := c.get(ctx, "/scam-reports/"+id, nil, &report); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &report, nil
}

func (c *Client) CreateScamReport(ctx context.Context, input ScamReportInput) (*scamradar.Report, error) {
	ctx, span := tracer.Start(ctx, "CreateScamReport")
	defer span.End()

	var report scamradar.Report
	if err := c.post(ctx, "/scam-reports", input, &report); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &report, nil
}

// VoteScamReport casts an up or down vote and returns the updated counters.
func (c *Client) VoteScamReport(ctx context.Context, id string, up bool) (*scamradar.Report, error) {
	ctx, span := tracer.Start(ctx, "VoteScamReport")
	defer span.End()

	direction := "down"
	if up {
		direction = "up"
	}
	var report scamradar.Report
	if err := c.post(ctx, "/scam-reports/"+id+"/vote", map[string]string{"direction": direction}, &report); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &report, nil
}

func (c *Client) CommentScamReport(ctx context.Context, id, parentID, body string) (*scamradar.Comment, error) {
	ctx, span := tracer.Start(ctx, "CommentScamReport")
	defer span.End()

	payload := map[string]string{"body": body}
	if parentID != "" {
		payload["parentId"] = parentID
	}
	var comment scamradar.Comment
	if err := c.post(ctx, "/scam-reports/"+id+"/comments", payload, &comment); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteScamReport(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "DeleteScamReport")
	defer span.End()
	return c.delete(ctx, "/scam-reports/"+id)
}

package screens

import (
	"context"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/api"
	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/scamradar"

	"go.uber.org/zap"
)

// ReportAnnouncer broadcasts a newly published report so feeds in other
// running instances refetch.
type ReportAnnouncer interface {
	PublishReportSubmitted(ctx context.Context, reportID string) error
}

// ScamRadarScreen is the scam-detector view: the pre-screen scan, analysis
// submission, the community feed with voting/comments, and the local scan
// history fallback. Feed search is server-delegated.
type ScamRadarScreen struct {
	client    *api.Client
	history   *scamradar.History
	announcer ReportAnnouncer
	logger    *zap.Logger

	Feed  *ListController[scamradar.Report]
	Modal Modal[scamradar.Report]
}

func NewScamRadarScreen(client *api.Client, history *scamradar.History, announcer ReportAnnouncer, logger *zap.Logger) *ScamRadarScreen {
	fetch := func(ctx context.Context, filter Filter) ([]scamradar.Report, error) {
		return client.ListScamReports(ctx, filter.Search)
	}
	return &ScamRadarScreen{
		client:    client,
		history:   history,
		announcer: announcer,
		logger:    logger,
		Feed:      NewListController[scamradar.Report]("scam-reports", FilterServer, fetch, nil, logger),
	}
}

// PreScan surfaces advisory tags for the draft offer text. It is purely
// informational: submission proceeds regardless of what it finds.
func (s *ScamRadarScreen) PreScan(offerText string) []scamradar.AdvisoryTag {
	return scamradar.PreScan(offerText)
}

// Analyze submits the offer for AI analysis and records the scan locally so
// it is still readable when the reports feed is unreachable.
func (s *ScamRadarScreen) Analyze(ctx context.Context, offerText string, image []byte, filename string) (*scamradar.Analysis, error) {
	tags := scamradar.PreScan(offerText)

	analysis, err := s.client.AnalyzeOffer(ctx, offerText, image, filename)
	if err != nil {
		if _, herr := s.history.Add(ctx, offerText, tags, nil); herr != nil {
			s.logger.Warn("failed to record failed scan", zap.Error(herr))
		}
		return nil, err
	}

	if _, herr := s.history.Add(ctx, offerText, tags, analysis); herr != nil {
		s.logger.Warn("failed to record scan", zap.Error(herr))
	}
	return analysis, nil
}

// Report publishes an analyzed offer to the community feed, refetches it, and
// announces the new report to other running instances.
func (s *ScamRadarScreen) Report(ctx context.Context, input api.ScamReportInput) error {
	var reportID string
	err := s.Feed.Mutate(ctx, func(ctx context.Context) error {
		report, err := s.client.CreateScamReport(ctx, input)
		if err != nil {
			return err
		}
		reportID = report.ID
		return nil
	})
	if err != nil {
		return err
	}

	if s.announcer != nil {
		if aerr := s.announcer.PublishReportSubmitted(ctx, reportID); aerr != nil {
			s.logger.Warn("failed to announce report", zap.Error(aerr))
		}
	}
	return nil
}

func (s *ScamRadarScreen) Vote(ctx context.Context, reportID string, up bool) error {
	return s.Feed.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.VoteScamReport(ctx, reportID, up)
		return err
	})
}

func (s *ScamRadarScreen) Comment(ctx context.Context, reportID, parentID, body string) error {
	return s.Feed.Mutate(ctx, func(ctx context.Context) error {
		_, err := s.client.CommentScamReport(ctx, reportID, parentID, body)
		return err
	})
}

func (s *ScamRadarScreen) Delete(ctx context.Context, reportID string) error {
	return s.Feed.Mutate(ctx, func(ctx context.Context) error {
		return s.client.DeleteScamReport(ctx, reportID)
	})
}

// History returns the locally kept scans, newest first.
func (s *ScamRadarScreen) History(ctx context.Context) ([]scamradar.ScanRecord, error) {
	return s.history.List(ctx)
}

package ifixit

import "context"

// IIFixit is the repair-guide provider consumed by the guide strategy.
// Empty results are reported as zero values with a nil error.
type IIFixit interface {
	// SearchDevice resolves free text to a device category title ("" if none).
	SearchDevice(ctx context.Context, query string) (string, error)

	// ListGuides lists guide summaries for a device category.
	ListGuides(ctx context.Context, deviceTitle string) ([]GuideSummary, error)

	// GetGuideDetails fetches a guide with cleaned steps (nil if unusable).
	GetGuideDetails(ctx context.Context, guideID int) (*GuideDetails, error)
}

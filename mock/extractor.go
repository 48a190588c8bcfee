package mock

import "github.com/fwojciec/trellodoc"

var _ trellodoc.RegionExtractor = (*RegionExtractor)(nil)

// RegionExtractor is a mock implementation of trellodoc.RegionExtractor.
type RegionExtractor struct {
	ExtractMethodsFn func(page string, region string) ([]*trellodoc.RawMethod, error)
}

func (e *RegionExtractor) ExtractMethods(page string, region string) ([]*trellodoc.RawMethod, error) {
	return e.ExtractMethodsFn(page, region)
}

package domain

import "time"

// BookingRecord is an already-fetched booking as returned by the query
// layer. The reporting engine treats it as immutable input.
type BookingRecord struct {
	ID          string
	TotalAmount float64
	CreatedAt   time.Time
	Details     []BookingDetail
}

// BookingDetail carries its own timestamp, distinct from the booking's
// CreatedAt. Bucketing always uses the detail timestamp.
type BookingDetail struct {
	ID        string
	CreatedAt time.Time
	Campaign  *Campaign
}

type Campaign struct {
	ID     string
	Spaces []Space
}

// Space is a bookable media unit. MediaType and Category may both be
// missing; a space without the requested dimension contributes nothing.
type Space struct {
	BasicInformation BasicInformation
}

type BasicInformation struct {
	MediaType *MediaType
	Category  []Category
}

type MediaType struct {
	Name string
}

type Category struct {
	Name string
}

// GroupKey resolves the grouping value for the given dimension, or
// ok=false when the space does not carry it.
func (s Space) GroupKey(dim Dimension) (string, bool) {
	switch dim {
	case DimensionMediaType:
		if s.BasicInformation.MediaType == nil || s.BasicInformation.MediaType.Name == "" {
			return "", false
		}
		return s.BasicInformation.MediaType.Name, true
	case DimensionCategory:
		if len(s.BasicInformation.Category) == 0 || s.BasicInformation.Category[0].Name == "" {
			return "", false
		}
		return s.BasicInformation.Category[0].Name, true
	}
	return "", false
}

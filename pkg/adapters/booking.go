package adapters

import (
	"database/sql"

	"github.com/oohdesk/revenue-atlas/pkg/models/api"
	"github.com/oohdesk/revenue-atlas/pkg/models/domain"
	"github.com/oohdesk/revenue-atlas/pkg/models/store"
)

func MapStoreBookingToDomain(b store.Booking) domain.BookingRecord {
	record := domain.BookingRecord{
		ID:          b.ID,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}

	for _, d := range b.Details {
		detail := domain.BookingDetail{ID: d.ID, CreatedAt: d.CreatedAt}
		if d.CampaignID.Valid {
			campaign := &domain.Campaign{ID: d.CampaignID.String}
			for _, sp := range d.Spaces {
				space := domain.Space{}
				if sp.MediaType.Valid && sp.MediaType.String != "" {
					space.BasicInformation.MediaType = &domain.MediaType{Name: sp.MediaType.String}
				}
				if sp.Category.Valid && sp.Category.String != "" {
					space.BasicInformation.Category = []domain.Category{{Name: sp.Category.String}}
				}
				campaign.Spaces = append(campaign.Spaces, space)
			}
			detail.Campaign = campaign
		}
		record.Details = append(record.Details, detail)
	}

	return record
}

// MapDomainBookingToStore flattens a record into insertable rows. A
// space keeps only its first category, matching how grouping reads it
// back. Missing ids stay empty for the store to mint.
func MapDomainBookingToStore(b domain.BookingRecord) store.Booking {
	row := store.Booking{
		ID:          b.ID,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}

	for _, d := range b.Details {
		detail := store.BookingDetail{ID: d.ID, BookingID: b.ID, CreatedAt: d.CreatedAt}
		if d.Campaign != nil {
			detail.CampaignID = sql.NullString{String: d.Campaign.ID, Valid: d.Campaign.ID != ""}
			for _, sp := range d.Campaign.Spaces {
				space := store.Space{CampaignID: d.Campaign.ID}
				if sp.BasicInformation.MediaType != nil {
					space.MediaType = sql.NullString{String: sp.BasicInformation.MediaType.Name, Valid: true}
				}
				if len(sp.BasicInformation.Category) > 0 {
					space.Category = sql.NullString{String: sp.BasicInformation.Category[0].Name, Valid: true}
				}
				detail.Spaces = append(detail.Spaces, space)
			}
		}
		row.Details = append(row.Details, detail)
	}

	return row
}

func MapDomainBookingToAPI(b domain.BookingRecord) api.Booking {
	out := api.Booking{
		ID:          b.ID,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}

	for _, d := range b.Details {
		detail := api.BookingDetail{CreatedAt: d.CreatedAt}
		if d.Campaign != nil {
			campaign := &api.Campaign{}
			for _, sp := range d.Campaign.Spaces {
				campaign.Spaces = append(campaign.Spaces, api.Space{
					BasicInformation: mapBasicInformationDomainToAPI(sp.BasicInformation),
				})
			}
			detail.Campaign = campaign
		}
		out.Details = append(out.Details, detail)
	}

	return out
}

func mapBasicInformationDomainToAPI(info domain.BasicInformation) api.BasicInformation {
	out := api.BasicInformation{}
	if info.MediaType != nil {
		out.MediaType = &api.MediaType{Name: info.MediaType.Name}
	}
	for _, c := range info.Category {
		out.Category = append(out.Category, api.Category{Name: c.Name})
	}
	return out
}

func MapAPIBookingToDomain(b api.Booking) domain.BookingRecord {
	record := domain.BookingRecord{
		ID:          b.ID,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
	}

	for _, d := range b.Details {
		detail := domain.BookingDetail{CreatedAt: d.CreatedAt}
		if d.Campaign != nil {
			campaign := &domain.Campaign{}
			for _, sp := range d.Campaign.Spaces {
				space := domain.Space{}
				if sp.BasicInformation.MediaType != nil {
					space.BasicInformation.MediaType = &domain.MediaType{Name: sp.BasicInformation.MediaType.Name}
				}
				for _, c := range sp.BasicInformation.Category {
					space.BasicInformation.Category = append(space.BasicInformation.Category, domain.Category{Name: c.Name})
				}
				campaign.Spaces = append(campaign.Spaces, space)
			}
			detail.Campaign = campaign
		}
		record.Details = append(record.Details, detail)
	}

	return record
}

func MapChartSeriesDomainToAPI(s domain.ChartSeries) api.ChartResponse {
	out := api.ChartResponse{
		Labels: []string{},
		Values: []float64{},
		Colors: []string{},
	}
	out.Labels = append(out.Labels, s.Labels...)
	out.Values = append(out.Values, s.Values...)
	out.Colors = append(out.Colors, s.Colors...)
	return out
}

func MapPivotTableDomainToAPI(t domain.PivotTable) api.TableResponse {
	out := api.TableResponse{
		Columns: make([]api.Column, 0, len(t.Columns)),
		Rows:    make([]map[string]string, 0, len(t.Rows)),
	}
	for _, c := range t.Columns {
		out.Columns = append(out.Columns, api.Column{Header: c.Header, AccessorKey: c.AccessorKey})
	}
	for _, r := range t.Rows {
		row := make(map[string]string, len(r))
		for k, v := range r {
			row[k] = v
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func MapRevenueCardDomainToAPI(c domain.RevenueCard) api.RevenueCard {
	return api.RevenueCard{
		Title:     c.Title,
		DateRange: c.DateRange,
		Label:     c.Label,
		Value:     c.Value,
	}
}

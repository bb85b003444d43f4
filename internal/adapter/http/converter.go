// Package http provides the HTTP handler layer for the ski stay search API.
package http

import (
	"strings"

	"github.com/ski-stay/ski-stay-search/internal/domain"
)

// ToDomainCriteria converts a SearchHomesRequest to domain.SearchCriteria.
func ToDomainCriteria(req *SearchHomesRequest) domain.SearchCriteria {
	return domain.SearchCriteria{
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Regions:           req.Regions,
		Resorts:           req.Resorts,
		MileRadius:        req.MileRange,
		DateMode:          domain.DateMode(strings.ToLower(req.DateType)),
		MinNights:         req.MinNights,
		MinSkiableAcres:   req.MinSkiableAcres,
		MinVerticalDrop:   req.MinVerticalDrop,
		MinAnnualSnowfall: req.MinAnnualSnowfall,
		GuestCount:        req.NumberOfPeople,
		PetsAllowed:       req.PetsAllowed,
	}
}

// ToResortListResponse projects the resort catalog to the listing response.
func ToResortListResponse(table *domain.ResortTable) *ResortListResponse {
	all := table.All()
	resorts := make([]ResortDTO, 0, len(all))
	for _, r := range all {
		resorts = append(resorts, ResortDTO{
			Resort:    r.Name,
			Region:    r.Region,
			State:     r.State,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	return &ResortListResponse{
		Regions: table.Regions(),
		Resorts: resorts,
	}
}

// ToResortStatsResponse projects the resort catalog to the statistics response.
func ToResortStatsResponse(table *domain.ResortTable) *ResortStatsResponse {
	all := table.All()
	resorts := make([]ResortStatsDTO, 0, len(all))
	for _, r := range all {
		resorts = append(resorts, ResortStatsDTO{
			Resort:         r.Name,
			Region:         r.Region,
			State:          r.State,
			SkiableAcres:   r.SkiableAcres,
			VerticalDrop:   r.VerticalDrop,
			AnnualSnowfall: r.AnnualSnowfall,
		})
	}
	return &ResortStatsResponse{
		Resorts: resorts,
		Regions: table.Regions(),
	}
}

package service

import (
	"log"
	"time"

	"brik.community/portal/internal/entity"
	announcementDto "brik.community/portal/internal/modules/announcement/dto"
	commonDto "brik.community/portal/pkg/dto"
	"brik.community/portal/pkg/textmeta"
)

func applyDateColumns(a *entity.Announcement, fromDate, toDate, fromTime, toTime string) {
	if t, err := time.Parse("2006-01-02", fromDate); err == nil {
		a.StartDate = &t
	}
	if t, err := time.Parse("2006-01-02", toDate); err == nil {
		a.EndDate = &t
	}
	if fromTime != "" {
		a.StartTime = &fromTime
	}
	if toTime != "" {
		a.EndTime = &toTime
	}
}

// buildResponse separates the metadata block from the body for display. Rows
// written by this backend have the range in columns; for legacy rows the
// range only lives inside the content text and is recovered by parsing.
func buildResponse(a *entity.Announcement) announcementDto.AnnouncementResponse {
	meta := textmeta.AnnouncementCodec.Parse(a.Content)

	resp := announcementDto.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		Body:      meta.Body,
		Pinned:    a.Pinned,
		Malformed: meta.Malformed,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02 15:04:05"),
	}

	if a.StartDate != nil {
		resp.FromDate = a.StartDate.Format("2006-01-02")
		if a.EndDate != nil {
			resp.ToDate = a.EndDate.Format("2006-01-02")
		}
		if a.StartTime != nil {
			resp.FromTime = *a.StartTime
		}
		if a.EndTime != nil {
			resp.ToTime = *a.EndTime
		}
	} else if meta.FromDate != "" || meta.FromTime != "" {
		// Legacy row: the content text is the only place the range exists.
		resp.FromDate = meta.FromDate
		resp.ToDate = meta.ToDate
		resp.FromTime = meta.FromTime
		resp.ToTime = meta.ToTime
		resp.Legacy = true
	}

	if meta.Malformed {
		log.Printf("Announcement %s has date metadata that could not be parsed", a.ID)
	}

	resp.Author = commonDto.AuthorResponse{
		ID:        a.CreatedBy.ID,
		Username:  a.CreatedBy.Username,
		AvatarURL: a.CreatedBy.AvatarURL,
	}
	if a.CreatedBy.Profile != nil {
		resp.Author.FullName = a.CreatedBy.Profile.FullName
	}

	return resp
}

package form

import (
	"strings"

	"github.com/iliyamo/venue-booking/internal/model"
)

// ArtistForm is bound from the new/edit artist page.
type ArtistForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	Genres             []string `form:"genres"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f *ArtistForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	f.Genres = trimAll(f.Genres)
}

// Validate normalizes the form and returns nil when it is valid.
func (f *ArtistForm) Validate() Errors {
	f.Normalize()
	errs := Errors{}
	requireText(errs, "name", f.Name)
	requireText(errs, "city", f.City)
	checkState(errs, f.State)
	checkPhone(errs, f.Phone)
	checkGenres(errs, f.Genres)
	checkURL(errs, "image_link", f.ImageLink)
	checkURL(errs, "facebook_link", f.FacebookLink)
	checkURL(errs, "website_link", f.WebsiteLink)
	checkMaxLen(errs, "name", f.Name, maxName)
	checkMaxLen(errs, "city", f.City, maxText)
	checkMaxLen(errs, "phone", f.Phone, maxText)
	checkMaxLen(errs, "image_link", f.ImageLink, maxImageLink)
	checkMaxLen(errs, "facebook_link", f.FacebookLink, maxText)
	checkMaxLen(errs, "website_link", f.WebsiteLink, maxText)
	checkMaxLen(errs, "seeking_description", f.SeekingDescription, maxSeekingDescription)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f *ArtistForm) Artist(a *model.Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
	a.WebsiteLink = f.WebsiteLink
	a.LookingForVenue = f.SeekingVenue
	a.SeekingDescription = f.SeekingDescription
}

func FromArtist(a *model.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             append([]string(nil), a.Genres...),
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       a.LookingForVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

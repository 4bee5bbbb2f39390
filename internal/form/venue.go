package form

import (
	"strings"

	"github.com/iliyamo/venue-booking/internal/model"
)

// VenueForm is bound from the new/edit venue page.
type VenueForm struct {
	Name               string   `form:"name"`
	City               string   `form:"city"`
	State              string   `form:"state"`
	Address            string   `form:"address"`
	Phone              string   `form:"phone"`
	ImageLink          string   `form:"image_link"`
	Genres             []string `form:"genres"`
	FacebookLink       string   `form:"facebook_link"`
	WebsiteLink        string   `form:"website_link"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

// Normalize trims every text field in place.
func (f *VenueForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.ToUpper(strings.TrimSpace(f.State))
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
	f.SeekingDescription = strings.TrimSpace(f.SeekingDescription)
	f.Genres = trimAll(f.Genres)
}

// Validate normalizes the form and returns nil when it is valid.
func (f *VenueForm) Validate() Errors {
	f.Normalize()
	errs := Errors{}
	requireText(errs, "name", f.Name)
	requireText(errs, "city", f.City)
	checkState(errs, f.State)
	requireText(errs, "address", f.Address)
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
	checkMaxLen(errs, "address", f.Address, maxText)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Venue copies the form fields onto a venue model.  The id is left alone.
func (f *VenueForm) Venue(v *model.Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.FacebookLink = f.FacebookLink
	v.WebsiteLink = f.WebsiteLink
	v.LookingForTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}

// FromVenue prefills an edit form.
func FromVenue(v *model.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             append([]string(nil), v.Genres...),
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      v.LookingForTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

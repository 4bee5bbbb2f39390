package model

// Genre is shared reference data describing a musical style.  Rows are
// created lazily the first time a name is used and are looked up by name
// afterwards, so genre names are unique.
type Genre struct {
    ID   uint64 // genres.id
    Name string // genres.name (unique)
}

// GenreChoices lists the genres offered by the listing forms.
var GenreChoices = []string{
    "Alternative",
    "Blues",
    "Classical",
    "Country",
    "Electronic",
    "Folk",
    "Funk",
    "Hip-Hop",
    "Heavy Metal",
    "Instrumental",
    "Jazz",
    "Musical Theatre",
    "Pop",
    "Punk",
    "R&B",
    "Reggae",
    "Rock n Roll",
    "Soul",
    "Other",
}

package domain

import "fmt"

// ErrEmptyActivityName is returned when a study activity is created without a name.
var ErrEmptyActivityName = fmt.Errorf("%w: study activity name cannot be empty", ErrValidation)

// StudyActivity is a catalog entry describing a reusable exercise type:
// a display name, a thumbnail image, a description, and the URL used to
// launch the exercise. Read-mostly reference data.
type StudyActivity struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// NewStudyActivity creates a new StudyActivity. Only the name is required;
// thumbnail, description and URL may be empty.
// Returns an error if validation fails.
func NewStudyActivity(name, thumbnail, description, url string) (*StudyActivity, error) {
	activity := &StudyActivity{
		Name:        name,
		Thumbnail:   thumbnail,
		Description: description,
		URL:         url,
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	return activity, nil
}

// Validate checks if the StudyActivity has valid data.
func (a *StudyActivity) Validate() error {
	if a.Name == "" {
		return ErrEmptyActivityName
	}
	return nil
}

package models

// PetProfile defines the structure for pet dating profiles
type PetProfile struct {
	UserID        string   `dynamodbav:"userId" json:"userId"`                                 // ✅ Partition Key
	PetName       string   `dynamodbav:"petName" json:"petName"`                               // Name of the pet
	Age           int      `dynamodbav:"age" json:"age"`                                       // Pet age, positive integer
	Breed         string   `dynamodbav:"breed" json:"breed"`                                   // Breed of the pet
	About         string   `dynamodbav:"about" json:"about"`                                   // Free-text description
	PhotoRef      string   `dynamodbav:"photoRef,omitempty" json:"photoRef,omitempty"`         // S3 key of the pet photo
	ContactHandle string   `dynamodbav:"contactHandle,omitempty" json:"contactHandle,omitempty"` // Public handle revealed on mutual match
	Latitude      *float64 `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`         // Latitude of the owner's location
	Longitude     *float64 `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`       // Longitude of the owner's location
	NotifyChannel string   `dynamodbav:"notifyChannel,omitempty" json:"notifyChannel,omitempty"` // Push channel for notifications
}

// HasLocation reports whether the profile carries a usable location.
// A profile with only one coordinate set is treated as having none.
func (p *PetProfile) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// PetProfilesTable is the DynamoDB table name for pet profiles
const PetProfilesTable = "PetProfiles"

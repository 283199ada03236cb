package constants

const (
	MAX_DOCUMENTS_PER_ASSET = 10
	MAX_IMAGES_PER_ASSET    = 20
	MAX_AMENITIES_PER_ASSET = 50

	MAX_TITLE_LENGTH       = 200
	MAX_DESCRIPTION_LENGTH = 5000
)

package dto

// ==================== CONTENT REQUEST DTOs ====================

type AddPictureRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200" example:"Our first date"`
	Description string `json:"description" validate:"max=1000" example:"The park where we met"`
	Position    int    `json:"position" validate:"gte=0" example:"0"`
}

func (r AddPictureRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdatePictureRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Position    int    `json:"position" validate:"gte=0"`
}

func (r UpdatePictureRequest) Validate() error {
	return GetValidator().Struct(r)
}

type AddMessageRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000" example:"You light up my world"`
	Position int    `json:"position" validate:"gte=0" example:"0"`
}

func (r AddMessageRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateMessageRequest struct {
	Content  string `json:"content" validate:"required,min=1,max=2000"`
	Position int    `json:"position" validate:"gte=0"`
}

func (r UpdateMessageRequest) Validate() error {
	return GetValidator().Struct(r)
}

type AddTreatRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200" example:"Strawberry cupcake"`
	Description string `json:"description" validate:"max=1000" example:"Baked with extra love"`
	Position    int    `json:"position" validate:"gte=0" example:"0"`
}

func (r AddTreatRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateTreatRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"max=1000"`
	Position    int    `json:"position" validate:"gte=0"`
}

func (r UpdateTreatRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ReorderRequest carries the full ordered id list for a content kind. The
// server reassigns positions to match the list order.
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" validate:"required,min=1,dive,required"`
}

func (r ReorderRequest) Validate() error {
	return GetValidator().Struct(r)
}

// ==================== CONTENT RESPONSE DTOs ====================

type PictureResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Position    int    `json:"position"`
}

type MessageResponse struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Position int    `json:"position"`
}

type TreatResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Position    int    `json:"position"`
}

// PictureCollectionResponse is the role-resolved visible view of the picture
// list. Locked is the count of still-locked placeholder slots.
type PictureCollectionResponse struct {
	Pictures []PictureResponse `json:"pictures"`
	Locked   int               `json:"locked"`
	Total    int               `json:"total"`
}

type MessageCollectionResponse struct {
	Messages []MessageResponse `json:"messages"`
	Locked   int               `json:"locked"`
	Total    int               `json:"total"`
}

type TreatCollectionResponse struct {
	Treats []TreatResponse `json:"treats"`
	Locked int             `json:"locked"`
	Total  int             `json:"total"`
}

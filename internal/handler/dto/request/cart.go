package request

type AddRoomRequest struct {
	RoomTypeID string `json:"room_type_id" binding:"required,max=64"`
}

// Delta of zero is rejected by required.
type UpdateQuantityRequest struct {
	Delta int `json:"delta" binding:"required,min=-20,max=20"`
}

type SetGuestsRequest struct {
	Adults   int `json:"adults" binding:"required,min=1,max=30"`
	Children int `json:"children" binding:"min=0,max=30"`
}

package connection

import (
	mb "github.com/battledinghy/dinghy-backend/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespChallenge struct {
	ThreadId   string `json:"thread_id"`
	GameNumber int    `json:"game_number"`
	FirstTurn  string `json:"first_turn"`
	Board      string `json:"board"`
	ReplyText  string `json:"reply_text"`
}

type RespFire struct {
	ThreadId   string `json:"thread_id"`
	GameNumber int    `json:"game_number"`
	Coordinate string `json:"coordinate"`

	// miss | hit | sunk | already_fired
	Outcome  string `json:"outcome"`
	ShipSize int    `json:"ship_size,omitempty"`
	ShipName string `json:"ship_name,omitempty"`

	Hits      int `json:"hits"`
	Misses    int `json:"misses"`
	ShipsLeft int `json:"ships_left"`

	// active | completed
	GameState string `json:"game_state"`
	NextTurn  string `json:"next_turn,omitempty"`
	Winner    string `json:"winner,omitempty"`

	Board     string `json:"board"`
	ReplyText string `json:"reply_text"`
}

type RespGameStatus struct {
	ThreadId   string `json:"thread_id"`
	GameNumber int    `json:"game_number"`

	Player1Id string `json:"player1_id"`
	Player2Id string `json:"player2_id"`

	// Raw grids in the storage cell-value domain.
	Player1Board mb.Grid `json:"player1_board"`
	Player2Board mb.Grid `json:"player2_board"`

	Player1Ships map[int]int `json:"player1_ships"`
	Player2Ships map[int]int `json:"player2_ships"`

	Turn      string `json:"turn"`
	GameState string `json:"game_state"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

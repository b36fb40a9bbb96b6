package connection

// ReqChallenge starts a new game. ThreadId is the opaque conversation
// key the bridge observed on the challenge post; every later fire
// command for this game must carry the same key.
type ReqChallenge struct {
	ThreadId  string `json:"thread_id"`
	Player1Id string `json:"player1_id"`
	Player2Id string `json:"player2_id"`
}

// ReqFire delivers one shot attempt. Text is the raw post text; the
// server extracts the fire command from it.
type ReqFire struct {
	ThreadId string `json:"thread_id"`
	PlayerId string `json:"player_id"`
	Text     string `json:"text"`
}

type ReqGameStatus struct {
	ThreadId string `json:"thread_id"`
}

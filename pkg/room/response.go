package room

// PayloadIn is a message received from a client
type PayloadIn struct {
	// Action is fold, bet or state
	Action string `json:"action"`
	Bet    int    `json:"bet"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// Response is a message sent to a client
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

func newErrorResponse(ctx string, err error) *Response {
	return &Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}

func newGameResponse(data interface{}) *Response {
	return &Response{
		Key:  "game",
		Data: data,
	}
}

package controller

// Response is the envelope every JSON API endpoint answers with.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func success(message string, data any) Response {
	return Response{Status: "success", Message: message, Data: data}
}

func fail(message string) Response {
	return Response{Status: "fail", Message: message}
}

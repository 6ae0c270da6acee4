package models

// GenericErrorMessage 所有持久化失败统一返回的信息
const GenericErrorMessage = "Something went wrong"

// ErrorResponse 错误响应结构体
type ErrorResponse struct {
	Error string `json:"error"`
}

// ListFormdataResponse 内部查询响应结构体
type ListFormdataResponse struct {
	Formdata []Formdata `json:"formdata"`
}

// FormdataEvent 写入成功后发往下游的事件
type FormdataEvent struct {
	Type     string   `json:"type"`
	Formdata Formdata `json:"formdata"`
}

const EventFormdataCreated = "formdata.created"

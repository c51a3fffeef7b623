package dto

// UploadResponse はCSVアップロード結果のレスポンスDTOです。
type UploadResponse struct {
	UploadID string `json:"uploadId"`
	Symbol   string `json:"symbol"`
	Mode     string `json:"mode"`
	Detected string `json:"detected"`
	Rows     int    `json:"rows"`
	Columns  int    `json:"columns"`
	Applied  bool   `json:"applied"`
	Message  string `json:"message"`
}

// StatusResponse は銘柄ごとのカスタムデータ状態のレスポンスDTOです。
type StatusResponse struct {
	Symbol         string `json:"symbol"`
	HasHistorical  bool   `json:"hasHistorical"`
	HasPrediction  bool   `json:"hasPrediction"`
	HistoricalRows int    `json:"historicalRows"`
	PredictionRows int    `json:"predictionRows"`
}

// SourcesResponse はデータの参照順のレスポンスDTOです。
type SourcesResponse struct {
	Sources []string `json:"sources"`
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

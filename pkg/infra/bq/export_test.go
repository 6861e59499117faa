package bq

var (
	SanitizeProtoJSON  = sanitizeProtoJSON
	ProtoFieldJSONName = protoFieldJSONName
	EncodeRow          = encodeRow
)

package usecase

var (
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
	InsertCheckHistoryForTest          = insertCheckHistory
	ExpandPathForTest                  = expandPath
)

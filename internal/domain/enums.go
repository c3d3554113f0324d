package domain

// IDType - тип документа поставщика.
type IDType string

const (
	IDTypeCC  IDType = "CC"  // cédula de ciudadanía
	IDTypeNIT IDType = "NIT" // налоговый номер с контрольной цифрой
	IDTypeCE  IDType = "CE"  // cédula de extranjería
	IDTypePP  IDType = "PP"  // паспорт
)

// Status - статус записи справочника (поставщик, товар).
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// PresentationState - состояние упаковки при приёмке.
type PresentationState string

const (
	PresentationGood    PresentationState = "bueno"
	PresentationRegular PresentationState = "regular"
	PresentationBad     PresentationState = "malo"
)

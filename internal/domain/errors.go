package domain

// ErrorKind определяет категорию доменной ошибки. HTTP-статус выводится
// из категории на границе сервиса, сами сервисы про HTTP не знают.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindDefaultNotFound   ErrorKind = "DEFAULT_ROLE_NOT_FOUND"
	KindValidation        ErrorKind = "VALIDATION_FAILURE"
	KindReferenceNotFound ErrorKind = "REFERENCE_NOT_FOUND"
	KindRoleInUse         ErrorKind = "ROLE_IN_USE"
	KindDeleteFailed      ErrorKind = "DELETE_FAILED"
	KindUnexpected        ErrorKind = "UNEXPECTED"
	KindConfiguration     ErrorKind = "CONFIGURATION"
)

// Ключи каталога сообщений. Текст разрешается в internal/i18n по локали
// запроса, здесь только идентичность.
const (
	MsgEntityNotFoundDescription = "exception.entityNotFound.description"
	MsgEntityNotFoundErr         = "exception.entityNotFound.err"
	MsgEntityNotFoundHelp        = "exception.entityNotFound.help"

	MsgDefaultRoleNotFoundDescription = "exception.defaultRoleNotFound.description"
	MsgDefaultRoleNotFoundErr         = "exception.defaultRoleNotFound.err"
	MsgDefaultRoleNotFoundHelp        = "exception.defaultRoleNotFound.help"

	MsgRoleInUseDescription = "exception.roleInUse.description"
	MsgRoleInUseErr         = "exception.roleInUse.err"
	MsgRoleInUseHelp        = "exception.roleInUse.help"

	MsgValidationFailureDescription = "validation.failure.description"
	MsgValidationRequiredErr        = "validation.failure.required.err"
	MsgValidationMaxLengthErr       = "validation.failure.stringMaxLength.err"
	MsgValidationUniquenessErr      = "validation.failure.uniqueness.err"
	MsgReferenceNotFoundErr         = "validation.failure.referenceNotFound.err"

	MsgUnexpectedErrorDescription    = "unexpected.error.description"
	MsgConfigurationErrorDescription = "configuration.error.description"
	MsgConfigurationErrorHelp        = "configuration.error.help"

	MsgRoleFindByUIDHelp     = "role.error.findById.help"
	MsgRoleFindAllHelp       = "role.error.findAll.help"
	MsgRoleFindDefaultHelp   = "role.error.findDefault.help"
	MsgRoleSaveHelp          = "role.error.save.help"
	MsgRoleUpdateHelp        = "role.error.update.help"
	MsgRoleUpdateDefaultHelp = "role.error.updateDefault.help"
	MsgRoleDeleteHelp        = "role.error.delete.help"

	MsgMembershipFindByUIDHelp             = "membership.error.findById.help"
	MsgMembershipFindAllHelp               = "membership.error.findAll.help"
	MsgMembershipFindRoleOfMembershipHelp  = "membership.error.findRoleOfMembership.help"
	MsgMembershipFindMembershipsOfRoleHelp = "membership.error.findMembershipsOfRole.help"
	MsgMembershipSaveHelp                  = "membership.error.save.help"
	MsgMembershipDeleteHelp                = "membership.error.delete.help"

	MsgUserAPIFindByIDHelp = "userApi.error.findById.help"
	MsgTeamAPIFindByIDHelp = "teamApi.error.findById.help"
	MsgStatsHelp           = "stats.error.help"
)

// DomainError - типизированная доменная ошибка. Description/Message/Help -
// ключи каталога с позиционными аргументами; Err хранит исходную причину
// для логов и errorMessage, за пределы сервиса сырые ошибки не выходят.
type DomainError struct {
	Kind            ErrorKind
	Code            string
	DescriptionKey  string
	DescriptionArgs []any
	MessageKey      string
	MessageArgs     []any
	HelpKey         string
	HelpArgs        []any
	Err             error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Сентинелы для errors.Is. Сравнение идет по Code.
var (
	ErrNotFound            = &DomainError{Kind: KindNotFound, Code: "NOT_FOUND"}
	ErrDefaultRoleNotFound = &DomainError{Kind: KindDefaultNotFound, Code: "DEFAULT_ROLE_NOT_FOUND"}
	ErrRequired            = &DomainError{Kind: KindValidation, Code: "VALIDATION_REQUIRED"}
	ErrMaxLength           = &DomainError{Kind: KindValidation, Code: "VALIDATION_MAX_LENGTH"}
	ErrUniqueness          = &DomainError{Kind: KindValidation, Code: "VALIDATION_UNIQUENESS"}
	ErrReferenceNotFound   = &DomainError{Kind: KindReferenceNotFound, Code: "REFERENCE_NOT_FOUND"}
	ErrRoleInUse           = &DomainError{Kind: KindRoleInUse, Code: "ROLE_IN_USE"}
	ErrDeleteFailed        = &DomainError{Kind: KindDeleteFailed, Code: "DELETE_FAILED"}
	ErrUnexpected          = &DomainError{Kind: KindUnexpected, Code: "UNEXPECTED"}
	ErrConfiguration       = &DomainError{Kind: KindConfiguration, Code: "CONFIGURATION"}
)

// NewNotFoundError создает ошибку NOT_FOUND для сущности с данным uid.
func NewNotFoundError(uid string) *DomainError {
	return &DomainError{
		Kind:           KindNotFound,
		Code:           ErrNotFound.Code,
		DescriptionKey: MsgEntityNotFoundDescription,
		MessageKey:     MsgEntityNotFoundErr,
		MessageArgs:    []any{uid},
		HelpKey:        MsgEntityNotFoundHelp,
	}
}

// NewDefaultRoleNotFoundError сигнализирует, что ни одна роль не помечена
// как роль по умолчанию. Это проблема целостности данных, не ошибка клиента.
func NewDefaultRoleNotFoundError() *DomainError {
	return &DomainError{
		Kind:           KindDefaultNotFound,
		Code:           ErrDefaultRoleNotFound.Code,
		DescriptionKey: MsgDefaultRoleNotFoundDescription,
		MessageKey:     MsgDefaultRoleNotFoundErr,
		HelpKey:        MsgDefaultRoleNotFoundHelp,
	}
}

// NewRequiredError - обязательное поле отсутствует или пустое.
func NewRequiredError(field string) *DomainError {
	return &DomainError{
		Kind:           KindValidation,
		Code:           ErrRequired.Code,
		DescriptionKey: MsgValidationFailureDescription,
		MessageKey:     MsgValidationRequiredErr,
		MessageArgs:    []any{field},
	}
}

// NewMaxLengthError - значение поля длиннее допустимого.
func NewMaxLengthError(field string, max int) *DomainError {
	return &DomainError{
		Kind:           KindValidation,
		Code:           ErrMaxLength.Code,
		DescriptionKey: MsgValidationFailureDescription,
		MessageKey:     MsgValidationMaxLengthErr,
		MessageArgs:    []any{field, max},
	}
}

// NewUniquenessError - натуральный ключ уже занят другой сущностью.
func NewUniquenessError() *DomainError {
	return &DomainError{
		Kind:           KindValidation,
		Code:           ErrUniqueness.Code,
		DescriptionKey: MsgValidationFailureDescription,
		MessageKey:     MsgValidationUniquenessErr,
	}
}

// NewReferenceNotFoundError - внешний идентификатор не разрешился в
// существующего пользователя или команду. Это ошибка запроса, а не 404.
func NewReferenceNotFoundError(field, id string) *DomainError {
	return &DomainError{
		Kind:           KindReferenceNotFound,
		Code:           ErrReferenceNotFound.Code,
		DescriptionKey: MsgValidationFailureDescription,
		MessageKey:     MsgReferenceNotFoundErr,
		MessageArgs:    []any{field, id},
	}
}

// NewRoleInUseError - роль нельзя удалить, пока на нее ссылаются членства.
func NewRoleInUseError(uid string, memberships int) *DomainError {
	return &DomainError{
		Kind:           KindRoleInUse,
		Code:           ErrRoleInUse.Code,
		DescriptionKey: MsgRoleInUseDescription,
		MessageKey:     MsgRoleInUseErr,
		MessageArgs:    []any{uid, memberships},
		HelpKey:        MsgRoleInUseHelp,
	}
}

// NewDeleteFailedError оборачивает ошибку хранилища при удалении.
func NewDeleteFailedError(err error, helpKey, uid string) *DomainError {
	return &DomainError{
		Kind:           KindDeleteFailed,
		Code:           ErrDeleteFailed.Code,
		DescriptionKey: MsgUnexpectedErrorDescription,
		HelpKey:        helpKey,
		HelpArgs:       []any{uid},
		Err:            err,
	}
}

// NewUnexpectedError оборачивает неклассифицированную ошибку. helpKey
// указывает на операцию, в которой ошибка возникла.
func NewUnexpectedError(err error, helpKey string, helpArgs ...any) *DomainError {
	return &DomainError{
		Kind:           KindUnexpected,
		Code:           ErrUnexpected.Code,
		DescriptionKey: MsgUnexpectedErrorDescription,
		HelpKey:        helpKey,
		HelpArgs:       helpArgs,
		Err:            err,
	}
}

// NewConfigurationError - сбой разрешения сообщений или другой конфигурации.
func NewConfigurationError(err error) *DomainError {
	return &DomainError{
		Kind:           KindConfiguration,
		Code:           ErrConfiguration.Code,
		DescriptionKey: MsgConfigurationErrorDescription,
		HelpKey:        MsgConfigurationErrorHelp,
		Err:            err,
	}
}

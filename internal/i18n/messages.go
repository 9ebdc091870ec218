// Package i18n разрешает ключи сообщений в локализованный текст.
// Каталог статический, локаль выбирается по Accept-Language запроса.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

var supported = []language.Tag{
	language.AmericanEnglish, // первый - fallback
	language.BrazilianPortuguese,
}

// Translator подбирает подходящую локаль и форматирует сообщение
// позиционными аргументами.
type Translator struct {
	matcher  language.Matcher
	catalogs map[language.Tag]map[string]string
}

func NewTranslator() *Translator {
	return &Translator{
		matcher: language.NewMatcher(supported),
		catalogs: map[language.Tag]map[string]string{
			language.AmericanEnglish:     catalogEN,
			language.BrazilianPortuguese: catalogPTBR,
		},
	}
}

// Message возвращает текст для ключа в локали, ближайшей к acceptLanguage.
// Отсутствующий ключ - ошибка конфигурации, ее классифицирует вызывающий.
func (t *Translator) Message(acceptLanguage, key string, args ...any) (string, error) {
	tag, _ := language.MatchStrings(t.matcher, acceptLanguage)
	tag, _, _ = t.matcher.Match(tag)

	catalog, ok := t.catalogs[tag]
	if !ok {
		catalog = catalogEN
	}

	template, ok := catalog[key]
	if !ok {
		// ключ обязан присутствовать хотя бы в английском каталоге
		template, ok = catalogEN[key]
		if !ok {
			return "", fmt.Errorf("message key %q is not present in the catalog", key)
		}
	}

	if len(args) == 0 {
		return template, nil
	}
	return fmt.Sprintf(template, args...), nil
}

var catalogEN = map[string]string{
	"exception.entityNotFound.description": "Entity not found",
	"exception.entityNotFound.err":         "Could not find entity with uid %v",
	"exception.entityNotFound.help":        "Verify the uid and try again",

	"exception.defaultRoleNotFound.description": "Default role not found",
	"exception.defaultRoleNotFound.err":         "No role is currently flagged as the default role",
	"exception.defaultRoleNotFound.help":        "Flag exactly one role as default before retrying",

	"exception.roleInUse.description": "Role is in use",
	"exception.roleInUse.err":         "Role with uid %v is referenced by %v membership(s)",
	"exception.roleInUse.help":        "Delete or reassign the memberships before deleting the role",

	"validation.failure.description":           "Validation failure",
	"validation.failure.required.err":          "Field %v is required",
	"validation.failure.stringMaxLength.err":   "Field %v must not exceed %v characters",
	"validation.failure.uniqueness.err":        "An entity with the same unique value already exists",
	"validation.failure.referenceNotFound.err": "Field %v does not resolve to an existing entity: %v",

	"unexpected.error.description":    "Unexpected error",
	"configuration.error.description": "Configuration error",
	"configuration.error.help":        "Please check message settings",

	"role.error.findById.help":      "Error finding role with uid %v",
	"role.error.findAll.help":       "Error listing roles",
	"role.error.findDefault.help":   "Error finding the default role",
	"role.error.save.help":          "Error saving role",
	"role.error.update.help":        "Error updating role with uid %v",
	"role.error.updateDefault.help": "Error updating the default role",
	"role.error.delete.help":        "Error deleting role with uid %v",

	"membership.error.findById.help":              "Error finding membership with uid %v",
	"membership.error.findAll.help":               "Error listing memberships",
	"membership.error.findRoleOfMembership.help":  "Error finding the role of membership %v",
	"membership.error.findMembershipsOfRole.help": "Error listing memberships of role %v",
	"membership.error.save.help":                  "Error saving membership",
	"membership.error.delete.help":                "Error deleting membership with uid %v",

	"userApi.error.findById.help": "Error calling the user service for id %v",
	"teamApi.error.findById.help": "Error calling the team service for id %v",
	"stats.error.help":            "Error collecting storage statistics",
}

var catalogPTBR = map[string]string{
	"exception.entityNotFound.description": "Entidade não encontrada",
	"exception.entityNotFound.err":         "Não foi possível encontrar a entidade com uid %v",
	"exception.entityNotFound.help":        "Verifique o uid e tente novamente",

	"exception.defaultRoleNotFound.description": "Papel padrão não encontrado",
	"exception.defaultRoleNotFound.err":         "Nenhum papel está marcado como padrão no momento",
	"exception.defaultRoleNotFound.help":        "Marque exatamente um papel como padrão antes de tentar novamente",

	"exception.roleInUse.description": "Papel em uso",
	"exception.roleInUse.err":         "O papel com uid %v é referenciado por %v associação(ões)",
	"exception.roleInUse.help":        "Exclua ou reatribua as associações antes de excluir o papel",

	"validation.failure.description":           "Falha de validação",
	"validation.failure.required.err":          "O campo %v é obrigatório",
	"validation.failure.stringMaxLength.err":   "O campo %v não pode exceder %v caracteres",
	"validation.failure.uniqueness.err":        "Já existe uma entidade com o mesmo valor único",
	"validation.failure.referenceNotFound.err": "O campo %v não corresponde a uma entidade existente: %v",

	"unexpected.error.description":    "Erro inesperado",
	"configuration.error.description": "Erro de configuração",
	"configuration.error.help":        "Verifique as configurações de mensagens",

	"role.error.findById.help":      "Erro ao buscar o papel com uid %v",
	"role.error.findAll.help":       "Erro ao listar os papéis",
	"role.error.findDefault.help":   "Erro ao buscar o papel padrão",
	"role.error.save.help":          "Erro ao salvar o papel",
	"role.error.update.help":        "Erro ao atualizar o papel com uid %v",
	"role.error.updateDefault.help": "Erro ao atualizar o papel padrão",
	"role.error.delete.help":        "Erro ao excluir o papel com uid %v",

	"membership.error.findById.help":              "Erro ao buscar a associação com uid %v",
	"membership.error.findAll.help":               "Erro ao listar as associações",
	"membership.error.findRoleOfMembership.help":  "Erro ao buscar o papel da associação %v",
	"membership.error.findMembershipsOfRole.help": "Erro ao listar as associações do papel %v",
	"membership.error.save.help":                  "Erro ao salvar a associação",
	"membership.error.delete.help":                "Erro ao excluir a associação com uid %v",

	"userApi.error.findById.help": "Erro ao chamar o serviço de usuários para o id %v",
	"teamApi.error.findById.help": "Erro ao chamar o serviço de times para o id %v",
	"stats.error.help":            "Erro ao coletar estatísticas do armazenamento",
}

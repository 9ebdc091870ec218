// Package validation содержит чистые проверки входных данных.
// Никакого I/O: проверка существования сущностей остается за сервисами,
// сюда передаются только уже загруженные значения.
package validation

import (
	"strings"

	"github.com/bagdasarian/role-membership-service/internal/domain"
)

// Required проверяет, что строковое значение задано и непустое.
func Required(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewRequiredError(field)
	}
	return nil
}

// StringMaxLength проверяет, что значение не длиннее max символов.
// Пустое значение пропускается - за обязательность отвечает Required.
func StringMaxLength(value, field string, max int) error {
	if value != "" && len([]rune(value)) > max {
		return domain.NewMaxLengthError(field, max)
	}
	return nil
}

// Uniqueness проверяет, что натуральный ключ свободен или уже принадлежит
// кандидату. ownerUID - uid сущности, владеющей ключом (пустая строка, если
// ключ никем не занят); candidateUID - uid обновляемой сущности (пустая
// строка при создании). Обновление "само на себя" конфликтом не считается.
func Uniqueness(candidateUID, ownerUID string) error {
	if ownerUID == "" {
		return nil
	}
	if candidateUID == "" || candidateUID != ownerUID {
		return domain.NewUniquenessError()
	}
	return nil
}

// Package errors: 디렉터리 서비스 전체에서 공용으로 사용되는 에러 타입들을 정의한다.
// 입력 검증, 제약 충돌, 대상 없음, 저장소 장애의 네 가지 분류를 포함한다.
package errors

import (
	"errors"
	"fmt"
)

// ValidationError: 저장소 호출 전에 거부되는 잘못된 입력 에러
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed field=%s: %s", e.Field, e.Message)
}

// ConflictError: 저장소의 유니크 제약(순위, 언어) 또는 버전 충돌로 거부된 쓰기 에러
type ConflictError struct {
	Entity string
	Detail string
	Err    error
}

func (e ConflictError) Error() string {
	msg := fmt.Sprintf("conflict entity=%s", e.Entity)
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e ConflictError) Unwrap() error { return e.Err }

// NotFoundError: 참조된 아티스트/번역/공연이 존재하지 않을 때 발생하는 에러
type NotFoundError struct {
	Entity string
	ID     uint64
	Name   string
}

func (e NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s not found name=%s", e.Entity, e.Name)
	}
	return fmt.Sprintf("%s not found id=%d", e.Entity, e.ID)
}

// StoreError: 레코드 저장소(PostgreSQL 등) 작업을 수행하는 도중 발생한 에러
type StoreError struct {
	Operation string
	Err       error
}

func (e StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store error operation=%s", e.Operation)
	}
	return fmt.Sprintf("store error operation=%s: %v", e.Operation, e.Err)
}

func (e StoreError) Unwrap() error { return e.Err }

// IsValidation: 에러가 입력 검증 실패인지 확인한다.
func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

// IsConflict: 에러가 제약/버전 충돌인지 확인한다.
func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

// IsNotFound: 에러가 대상 없음인지 확인한다.
func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// IsStore: 에러가 저장소 장애인지 확인한다.
func IsStore(err error) bool {
	var target StoreError
	return errors.As(err, &target)
}

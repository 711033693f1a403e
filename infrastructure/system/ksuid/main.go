package ksuid

import (
	"github.com/segmentio/ksuid"
	domainKsuid "github.com/t-kuni/kagami-config/domain/system/ksuid"
)

// KsuidGenerator は時刻順にソート可能なIDを返します。バックアップファイル名に使います。
type KsuidGenerator struct{}

func NewKsuidGenerator() domainKsuid.IKsuid {
	return &KsuidGenerator{}
}

func (k *KsuidGenerator) New() string {
	return ksuid.New().String()
}

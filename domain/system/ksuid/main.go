//go:generate mockgen -source=$GOFILE -destination=${GOFILE}_mock.go -package=$GOPACKAGE

package ksuid

// IKsuid はバックアップファイル名などに使う一意なIDを発行します。
type IKsuid interface {
	New() string
}

package logger

import (
	"errors"

	"go.uber.org/zap/zapcore"
)

type Option func(*Adapter)

func MaxSize(size int) Option {
	return func(a *Adapter) {
		a.maxSize = size
	}
}

func MaxBackups(backups int) Option {
	return func(a *Adapter) {
		a.maxBackups = backups
	}
}

func MaxAge(age int) Option {
	return func(a *Adapter) {
		a.maxAge = age
	}
}

func SetLevel(level zapcore.Level) Option {
	return func(a *Adapter) {
		a.level = level
	}
}

func (a *Adapter) validate() error {
	if a.maxSize <= 0 {
		return errors.New("invalid maxSize: must be > 0")
	}

	if a.maxBackups <= 0 {
		return errors.New("invalid maxBackups: must be > 0")
	}

	if a.maxAge <= 0 {
		return errors.New("invalid maxAge: must be > 0")
	}
	return nil
}

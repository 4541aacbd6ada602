package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is re-exported so callers never import zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

// ErrorField is an alias for Err
func ErrorField(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Common domain keys

func UserID(id string) Field {
	return zap.String("user_id", id)
}

func DriverID(id string) Field {
	return zap.String("driver_id", id)
}

func TripID(id string) Field {
	return zap.String("trip_id", id)
}

func SocketID(id string) Field {
	return zap.String("socket_id", id)
}

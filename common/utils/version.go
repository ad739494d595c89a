package utils

const version = "1.0.0"

func GetVersion() string {
	return version
}

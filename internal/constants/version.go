package constants

// Version - версия приложения. Перезаписывается при сборке через -ldflags.
var Version = "dev"

// Commit - хеш коммита сборки. Перезаписывается при сборке через -ldflags.
var Commit = "unknown"

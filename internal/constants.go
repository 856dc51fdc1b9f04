package internal

const ApplicationName = "mc-mod-compat-check"

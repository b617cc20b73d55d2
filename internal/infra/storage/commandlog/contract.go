package commandlog

import "github.com/m04kA/SMC-GarageDesk/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

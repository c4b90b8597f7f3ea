package repository

var TrainerSessionsQuery = trainerSessionsQuery

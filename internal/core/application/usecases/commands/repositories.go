// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"staffing/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JobPostRepoFactory provides access to the job-post repository within a transaction.
	JobPostRepoFactory interface {
		JobPostRepository() ports.JobPostRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ProfileRepoFactory provides access to the profile repository within a transaction.
	ProfileRepoFactory interface {
		ProfileRepository() ports.ProfileRepository
	}

	// MessageRepoFactory provides access to the message repository within a transaction.
	MessageRepoFactory interface {
		MessageRepository() ports.MessageRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// JobPostUoW manages transactions for job-post-only operations.
	JobPostUoW interface {
		TxManager
		JobPostRepoFactory
	}

	// JobPostUoWFactory creates new job-post unit of work instances.
	JobPostUoWFactory interface {
		Create() JobPostUoW
	}

	// UserUoW manages transactions for user account operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// ProfileUoW manages transactions for profile operations.
	ProfileUoW interface {
		TxManager
		ProfileRepoFactory
	}

	// ProfileUoWFactory creates new profile unit of work instances.
	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// MessageUoW manages transactions for chat message operations.
	MessageUoW interface {
		TxManager
		MessageRepoFactory
	}

	// MessageUoWFactory creates new message unit of work instances.
	MessageUoWFactory interface {
		Create() MessageUoW
	}

	// DeliveryUoW manages transactions for checkout report delivery.
	// Delivery touches the job post, the admin recipient lookup and the
	// notification written for the admin, so it spans three repositories.
	DeliveryUoW interface {
		TxManager
		JobPostRepoFactory
		UserRepoFactory
		NotificationRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)

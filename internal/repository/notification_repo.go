// filepath: internal/repository/notification_repo.go
package repository

import (
	"riseup/internal/models"

	"github.com/Masterminds/squirrel"
)

// CreateNotification stores a new unread notification for a user.
func (s *Repository) CreateNotification(userID int64, n models.Notification) (int64, error) {
	if n.Type == "" {
		n.Type = "info"
	}
	query, args, err := s.Builder.Insert("notifications").
		Columns("user_id", "title", "message", "type").
		Values(userID, n.Title, n.Message, n.Type).ToSql()
	if err != nil {
		return 0, err
	}
	return s.insert(query, args)
}

// ListNotifications returns a user's notifications, newest first.
func (s *Repository) ListNotifications(userID int64, unreadOnly bool) ([]models.Notification, error) {
	q := s.Builder.Select("id", "title", "message", "type", "read", "created_at").
		From("notifications").Where(squirrel.Eq{"user_id": userID})
	if unreadOnly {
		q = q.Where(squirrel.Eq{"read": false})
	}
	query, args, err := q.OrderBy("created_at DESC", "id DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// MarkNotificationRead flags a notification as read. Notifications owned by
// another user are reported as ErrRecordNotFound.
func (s *Repository) MarkNotificationRead(userID, id int64) error {
	query, args, err := s.Builder.Update("notifications").Set("read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).ToSql()
	if err != nil {
		return err
	}
	res, err := s.DB.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

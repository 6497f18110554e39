package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"taskflow/internal/model"
)

// NotificationBell fetches the notification list once on mount; opening and
// closing the panel is pure local state and never refetches.
type NotificationBell struct {
	app.Compo

	open          bool
	notifications []model.Notification
}

func (b *NotificationBell) OnMount(ctx app.Context) {
	ctx.Async(func() {
		notifications, err := client.Notifications(ctx)
		if err != nil {
			app.Log("error loading notifications:", err)
			return
		}
		ctx.Dispatch(func(ctx app.Context) {
			b.notifications = notifications
		})
	})
}

func (b *NotificationBell) unreadCount() int {
	count := 0
	for _, n := range b.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// markRead flips the one item locally once the backend confirms; the list is
// not refetched.
func (b *NotificationBell) markRead(ctx app.Context, id int64) {
	ctx.Async(func() {
		if err := client.MarkNotificationRead(ctx, id); err != nil {
			app.Log("error marking notification read:", err)
			return
		}
		ctx.Dispatch(func(ctx app.Context) {
			markNotificationRead(b.notifications, id)
		})
	})
}

// markNotificationRead flips is_read on the matching item in place, leaving
// the rest of the list untouched.
func markNotificationRead(notifications []model.Notification, id int64) {
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].IsRead = true
		}
	}
}

func notificationIconClass(t model.NotificationType) string {
	switch t {
	case model.NotifyTaskAssigned:
		return "notification-icon notification-icon--task"
	case model.NotifyProjectAssigned:
		return "notification-icon notification-icon--project"
	case model.NotifyCommentAdded:
		return "notification-icon notification-icon--comment"
	default:
		return "notification-icon notification-icon--system"
	}
}

func (b *NotificationBell) Render() app.UI {
	unread := b.unreadCount()

	return app.Div().Class("topbar-notifications").Body(
		app.Button().
			Class("topbar-bell").
			OnClick(func(ctx app.Context, e app.Event) {
				b.open = !b.open
			}).
			Body(
				app.Span().Text("Notifications"),
				app.If(unread > 0, func() app.UI {
					return app.Span().Class("topbar-bell-count").Textf("%d", unread)
				}),
			),

		app.If(b.open, func() app.UI {
			return app.Div().Class("notification-dropdown").Body(
				app.Div().Class("notification-dropdown-header").Body(
					app.H3().Text("Notifications"),
					app.Button().
						Class("notification-dropdown-close").
						Text("Close").
						OnClick(func(ctx app.Context, e app.Event) {
							b.open = false
						}),
				),
				app.If(len(b.notifications) == 0, func() app.UI {
					return app.Div().Class("notification-dropdown-empty").Text("No new notifications")
				}).Else(func() app.UI {
					return app.Div().Class("notification-dropdown-list").Body(
						app.Range(b.notifications).Slice(func(i int) app.UI {
							n := b.notifications[i]
							class := "notification-item"
							if !n.IsRead {
								class += " notification-item--unread"
							}
							return app.Div().
								Class(class).
								OnClick(func(ctx app.Context, e app.Event) {
									b.markRead(ctx, n.ID)
								}).
								Body(
									app.Span().Class(notificationIconClass(n.Type)),
									app.Div().Class("notification-item-content").Body(
										app.Div().Class("notification-item-title").Text(n.Title),
										app.Div().Class("notification-item-message").Text(n.Message),
										app.Div().Class("notification-item-time").Text(n.CreatedAt),
									),
								)
						}),
					)
				}),
			)
		}),
	)
}
